package render

// ── Shared SVG pieces ────────────────────────────────────────────────────────

const axisTmpl = `
{{define "axis-bottom"}}<g id="{{.ID}}" class="axis" transform="translate({{num .TranslateX}},{{num .TranslateY}})" fill="none" font-size="10" font-family="sans-serif" text-anchor="middle">
  <path class="domain" stroke="currentColor" d="M0,6V0H{{num .Length}}V6"></path>
  {{- range .Ticks}}
  <g class="tick" transform="translate({{num .Position}},0)"><line stroke="currentColor" y2="6"></line><text fill="currentColor" y="9" dy="0.71em">{{.Label}}</text></g>
  {{- end}}
</g>{{end}}

{{define "axis-left"}}<g id="{{.ID}}" class="axis" transform="translate({{num .TranslateX}},{{num .TranslateY}})" fill="none" font-size="10" font-family="sans-serif" text-anchor="end">
  <path class="domain" stroke="currentColor" d="M-6,{{num .Length}}H0V0H-6"></path>
  {{- range .Ticks}}
  <g class="tick" transform="translate(0,{{num .Position}})"><line stroke="currentColor" x2="-6"></line><text fill="currentColor" x="-9" dy="0.32em">{{.Label}}</text></g>
  {{- end}}
</g>{{end}}
`

const chartTmpl = `
{{define "chart"}}<svg id="chart" {{if .Standalone}}xmlns="http://www.w3.org/2000/svg" {{end}}width="{{num .Chart.Width}}" height="{{num .Chart.Height}}">
  {{- with .Chart}}
  {{- range .Cells}}
  <rect class="cell" x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}" data-month="{{.Month}}" data-year="{{.Year}}" data-temp="{{num .Temp}}" data-variance="{{num .Variance}}" data-tooltip="{{.Tooltip}}"{{if .Fill}} fill="{{.Fill}}"{{end}}></rect>
  {{- end}}
  {{template "axis-bottom" .XAxis}}
  {{template "axis-left" .YAxis}}
  <text class="Label" id="{{.XLabel.ID}}" x="{{num .XLabel.X}}" y="{{num .XLabel.Y}}">{{.XLabel.Text}}</text>
  <text class="Label" id="{{.YLabel.ID}}" transform="rotate({{num .YLabel.Rotate}})" x="{{num .YLabel.X}}" y="{{num .YLabel.Y}}">{{.YLabel.Text}}</text>
  {{- end}}
</svg>{{end}}

{{define "palette"}}<svg id="palette" {{if .Standalone}}xmlns="http://www.w3.org/2000/svg" {{end}}width="{{num .Chart.Legend.Width}}" height="{{num .Chart.Legend.Height}}">
  {{- with .Chart.Legend}}
  {{- range .Swatches}}
  <rect x="{{num .X}}" width="{{num .Width}}" height="{{num .Height}}" fill="{{.Fill}}"></rect>
  {{- end}}
  {{template "axis-bottom" .Axis}}
  {{- end}}
</svg>{{end}}

{{define "svg"}}<?xml version="1.0" encoding="UTF-8"?>
{{template "chart" .}}
{{end}}
`

// ── Page ─────────────────────────────────────────────────────────────────────

const pageTmpl = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8"/>
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; background: #fafafa; color: #222; }
    h1 { margin-bottom: 4px; }
    #description { margin-bottom: 16px; color: #555; }
    .Label { font-size: 14px; text-anchor: middle; }
    .cell:hover { stroke: #222; stroke-width: 1; }
    #legend { margin-top: 12px; }
    #legend-label { font-size: 12px; color: #555; }
    #tooltip {
      position: absolute;
      pointer-events: none;
      opacity: 0;
      padding: 6px 8px;
      min-height: {{num .Chart.Layout.TooltipOffsetY}}px;
      font-size: 12px;
      background: #fff;
      border: 1px solid #999;
      border-radius: 4px;
    }
  </style>
</head>
<body>
  <h1 id="title">{{.Title}}</h1>
  <div id="description">{{.Chart.Description}}</div>
  {{template "chart" .}}
  <div id="legend">
    <div id="legend-label">{{.Chart.Legend.Label}}</div>
    {{template "palette" .}}
  </div>
  <div id="tooltip" data-opacity="{{num .Chart.Layout.TooltipOpacity}}" data-offset-y="{{num .Chart.Layout.TooltipOffsetY}}"></div>
  <script>
    (function () {
      var tip = document.getElementById('tooltip');
      var opacity = tip.getAttribute('data-opacity');
      var offsetY = parseFloat(tip.getAttribute('data-offset-y'));
      document.querySelectorAll('#chart .cell').forEach(function (cell) {
        cell.addEventListener('mouseover', function (event) {
          tip.setAttribute('data-year', cell.getAttribute('data-year'));
          tip.style.opacity = opacity;
          tip.innerHTML = cell.getAttribute('data-tooltip');
          tip.style.left = event.pageX + 'px';
          tip.style.top = (event.pageY - offsetY) + 'px';
        });
        cell.addEventListener('mouseout', function () {
          tip.style.opacity = 0;
        });
      });
    })();
  </script>
</body>
</html>
{{end}}
`
