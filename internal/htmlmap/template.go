package htmlmap

import "html/template"

// docTmpl renders the self-contained map document. Leaflet and its
// plugins load from CDN; the marker data is embedded as JSON, so the
// file needs no companion assets. Layer names and popup bodies pass
// through the engine's contextual escaping.
var docTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="generator" content="nqsmap {{.BuildID}} {{.GeneratedAt.UTC.Format "2006-01-02T15:04:05Z"}}">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet@1.9.4/dist/leaflet.css">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet.markercluster@1.5.3/dist/MarkerCluster.css">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet.awesome-markers@2.0.2/dist/leaflet.awesome-markers.css">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@3.2.0/dist/css/bootstrap.min.css">
{{- if .Fullscreen}}
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet.fullscreen@3.0.2/Control.FullScreen.css">
{{- end}}
{{- if .Search}}
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet-control-geocoder@2.4.0/dist/Control.Geocoder.css">
{{- end}}
{{- if .Locate}}
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/leaflet.locatecontrol@0.79.0/dist/L.Control.Locate.min.css">
{{- end}}
  <script src="https://cdn.jsdelivr.net/npm/leaflet@1.9.4/dist/leaflet.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/leaflet.featuregroup.subgroup@1.0.2/dist/leaflet.featuregroup.subgroup.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/leaflet.awesome-markers@2.0.2/dist/leaflet.awesome-markers.min.js"></script>
{{- if .Fullscreen}}
  <script src="https://cdn.jsdelivr.net/npm/leaflet.fullscreen@3.0.2/Control.FullScreen.min.js"></script>
{{- end}}
{{- if .Search}}
  <script src="https://cdn.jsdelivr.net/npm/leaflet-control-geocoder@2.4.0/dist/Control.Geocoder.min.js"></script>
{{- end}}
{{- if .Locate}}
  <script src="https://cdn.jsdelivr.net/npm/leaflet.locatecontrol@0.79.0/dist/L.Control.Locate.min.js"></script>
{{- end}}
  <style>
    html, body { margin: 0; height: 100%; }
    #map { height: 100%; }
    .legend {
      position: fixed; bottom: 18px; right: 18px; z-index: 9999;
      background: white; padding: 8px 10px; border: 1px solid #ccc;
      border-radius: 6px; font-size: 12px;
      box-shadow: 0 1px 4px rgba(0,0,0,0.15);
    }
    .legend-title { font-weight: 600; margin-bottom: 4px; }
    .legend-swatch {
      display: inline-block; width: 10px; height: 10px;
      margin-right: 6px; border: 1px solid #555;
    }
  </style>
</head>
<body>
  <div id="map"></div>
  <div class="legend">
    <div class="legend-title">Overall Rating</div>
{{- range .Legend}}
    <div><span class="legend-swatch" style="background: {{.Swatch}};"></span>{{.Label}}</div>
{{- end}}
  </div>
  <script>
    var config = {
      zoom: {{.Zoom}},
      fast: {{.Fast}},
      center: [{{.CenterLat}}, {{.CenterLng}}],
      bounds: [[{{.MinLat}}, {{.MinLng}}], [{{.MaxLat}}, {{.MaxLng}}]],
      swatches: {{.Swatches}},
      layers: {{.Layers}}
    };

    var map = L.map("map").setView(config.center, config.zoom);
    L.control.scale().addTo(map);
    L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
      maxZoom: 19,
      attribution: "&copy; OpenStreetMap contributors"
    }).addTo(map);

    var cluster = L.markerClusterGroup({chunkedLoading: true});
    cluster.addTo(map);

    var overlays = {};
    config.layers.forEach(function (layer) {
      var group = L.featureGroup.subGroup(cluster);
      layer.markers.forEach(function (m) {
        var marker;
        if (config.fast) {
          var hex = config.swatches[m.color] || config.swatches.gray;
          marker = L.circleMarker([m.lat, m.lng], {
            radius: 6, weight: 1, color: hex, fillColor: hex, fillOpacity: 0.8
          });
        } else {
          marker = L.marker([m.lat, m.lng], {
            icon: L.AwesomeMarkers.icon({
              icon: "info-sign", prefix: "glyphicon", markerColor: m.color
            })
          });
          if (m.popup) {
            marker.bindPopup(m.popup, {maxWidth: 450});
          }
        }
        if (m.tooltip) {
          marker.bindTooltip(m.tooltip);
        }
        marker.addTo(group);
      });
      group.addTo(map);
      overlays[layer.name] = group;
    });
    L.control.layers(null, overlays, {collapsed: true}).addTo(map);
    map.fitBounds(config.bounds);
{{- if .Fullscreen}}
    L.control.fullscreen().addTo(map);
{{- end}}
{{- if .Search}}
    L.Control.geocoder({defaultMarkGeocode: true}).addTo(map);
{{- end}}
{{- if .Locate}}
    L.control.locate().addTo(map);
{{- end}}
  </script>
</body>
</html>
`))
