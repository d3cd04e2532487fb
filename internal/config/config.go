package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Logical column names. The YAML config can remap any of them to a
// different source header; everything except the four required ones is
// optional in the input.
const (
	ColLatitude       = "latitude"
	ColLongitude      = "longitude"
	ColServiceName    = "service_name"
	ColRating         = "rating"
	ColApprovalNumber = "approval_number"
	ColProviderID     = "provider_id"
	ColProviderName   = "provider_name"
	ColManagementType = "management_type"
	ColServiceType    = "service_type"
	ColServiceSubType = "service_sub_type"
	ColPhone          = "phone"
	ColAddressLine1   = "address_line1"
	ColAddressLine2   = "address_line2"
	ColSuburb         = "suburb"
	ColState          = "state"
	ColPostcode       = "postcode"
	ColReportDate     = "report_date"
	ColMaxPlaces      = "max_places"
	ColSEIFA          = "seifa"
	ColARIA           = "aria"
)

// defaultColumns maps logical names to the headers of an ACECQA export.
var defaultColumns = map[string]string{
	ColLatitude:       "Latitude",
	ColLongitude:      "Longitude",
	ColServiceName:    "Service Name",
	ColRating:         "Overall Rating",
	ColApprovalNumber: "Service Approval Number",
	ColProviderID:     "Provider Approval Number",
	ColProviderName:   "Provider Name",
	ColManagementType: "Provider Management Type",
	ColServiceType:    "Service Type",
	ColServiceSubType: "Service Sub Type",
	ColPhone:          "Service phone number",
	ColAddressLine1:   "Address Line 1",
	ColAddressLine2:   "Address Line 2",
	ColSuburb:         "Suburb/Town",
	ColState:          "Address State",
	ColPostcode:       "Postcode",
	ColReportDate:     "Final Report Sent Date",
	ColMaxPlaces:      "Maximum total places",
	ColSEIFA:          "SEIFA",
	ColARIA:           "ARIA+",
}

// ColumnMap resolves logical column names to source headers.
type ColumnMap map[string]string

// Header returns the source header for a logical column name.
func (m ColumnMap) Header(logical string) string {
	if h, ok := m[logical]; ok {
		return h
	}
	return defaultColumns[logical]
}

// Config holds all runtime configuration for a nqsmap run.
type Config struct {
	InputPath  string
	OutputPath string
	ExportPath string
	Zoom       int
	Facets     []string // raw --facet values; first recognized key wins
	Filter     string
	Fast       bool
	Fullscreen bool
	Search     bool
	Locate     bool
	LogFormat  string // "text" or "json"

	Columns ColumnMap `yaml:"columns"` // logical name → source header overrides
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Columns map[string]string `yaml:"columns"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Columns = yc.Columns
	return c.validateColumns()
}

// validateColumns checks that every remapped column is a known logical
// name. A nil map means all defaults apply.
func (c *Config) validateColumns() error {
	for logical := range c.Columns {
		if _, ok := defaultColumns[logical]; !ok {
			return fmt.Errorf("unknown column %q in config", logical)
		}
	}
	return nil
}

// Validate checks the fields every command needs and returns an error if
// the config is invalid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--input is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("input not accessible: %w", err)
	}
	return c.validateColumns()
}

// ValidateForBuild additionally checks the output fields the build
// command needs.
func (c *Config) ValidateForBuild() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--out must not be empty")
	}
	if c.Zoom < 1 || c.Zoom > 19 {
		return fmt.Errorf("--zoom must be between 1 and 19, got %d", c.Zoom)
	}
	return nil
}

// RequiredHeaders returns the source headers the loader must find:
// coordinates, display name and rating, after any remapping.
func (c *Config) RequiredHeaders() []string {
	return []string{
		c.Columns.Header(ColLatitude),
		c.Columns.Header(ColLongitude),
		c.Columns.Header(ColServiceName),
		c.Columns.Header(ColRating),
	}
}
