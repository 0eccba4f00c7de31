package report

import (
	"fmt"
	"html/template"
	"io"
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f", v*100) },
	"m3":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"pos": func(v float64) string { return fmt.Sprintf("%.3f", v) },
}).Parse(reportHTML))

// HTMLOptions adjusts the rendered report page.
type HTMLOptions struct {
	// Title replaces the default page heading when non-empty.
	Title string
	// ChartHref links the volume chart page; the chart section is omitted
	// when empty.
	ChartHref string
}

// WriteHTML renders the full report page: key figures, the per-cargo loading
// table, the rejected-cargo warning, and per-cargo placement detail tables.
func (s Summary) WriteHTML(w io.Writer, opts HTMLOptions) error {
	title := opts.Title
	if title == "" {
		title = "Container loading plan"
	}
	data := struct {
		Summary
		Title     string
		ChartHref string
	}{Summary: s, Title: title, ChartHref: opts.ChartHref}
	return reportTemplate.Execute(w, data)
}

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 24px; background: #f5f7fa; color: #2d3748; }
.wrap { max-width: 1100px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px; box-shadow: 0 8px 30px rgba(0,0,0,.08); }
h1 { margin-top: 0; }
h2 { border-bottom: 3px solid #667eea; padding-bottom: 8px; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; margin-bottom: 24px; }
.card { background: #f7fafc; border-radius: 10px; padding: 18px; }
.card .value { font-size: 1.8em; font-weight: bold; color: #667eea; }
.card .unit { color: #718096; font-size: .85em; }
.bar { height: 26px; background: #e2e8f0; border-radius: 13px; overflow: hidden; margin: 12px 0 28px; }
.bar .fill { height: 100%; background: linear-gradient(90deg, #667eea, #764ba2); color: #fff; font-weight: bold; display: flex; align-items: center; justify-content: center; }
table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
th { background: #edf2f7; text-align: left; padding: 10px; }
td { padding: 8px 10px; border-bottom: 1px solid #e2e8f0; }
.warning { background: #fff3cd; border-left: 5px solid #ffc107; padding: 14px; border-radius: 6px; margin: 18px 0; }
.highlight { background: #ffd700; border-left: 5px solid #f39c12; padding: 18px; border-radius: 8px; margin: 18px 0; }
.highlight .big { font-size: 2.4em; font-weight: bold; color: #e67e22; }
</style>
</head>
<body>
<div class="wrap">
<h1>{{.Title}}</h1>

<div class="cards">
<div class="card"><div>Container volume</div><div class="value">{{m3 .ContainerVolume}}</div><div class="unit">m&sup3;</div></div>
<div class="card"><div>Used volume</div><div class="value">{{m3 .UsedVolume}}</div><div class="unit">m&sup3;</div></div>
<div class="card"><div>Available volume</div><div class="value">{{m3 .AvailableVolume}}</div><div class="unit">m&sup3;</div></div>
<div class="card"><div>Utilization</div><div class="value">{{pct .Utilization}}%</div><div class="unit">of container volume</div></div>
</div>

<div class="bar"><div class="fill" style="width: {{pct .Utilization}}%">{{pct .Utilization}}% used</div></div>

{{if .FillerName}}
<div class="highlight">
<div>Filler capacity: {{.FillerName}}</div>
<div class="big">{{.FillerCount}} unit(s)</div>
<div>{{m3 .FillerVolume}} m&sup3; of filler fits after the main load</div>
</div>
{{end}}

<h2>Loaded cargo</h2>
<table>
<thead><tr><th>Cargo</th><th>Units</th><th>Volume (m&sup3;)</th><th>Share</th></tr></thead>
<tbody>
{{range .Cargo}}<tr><td>{{.Name}}</td><td>{{.Count}}</td><td>{{m3 .Volume}}</td><td>{{pct .Share}}%</td></tr>
{{end}}</tbody>
</table>

{{if .Rejected}}
<div class="warning">
<strong>{{len .Rejected}} unit(s) did not fit:</strong>
<ul>
{{range .Rejected}}<li>{{.Name}} ({{.ID}}): {{pos .Length}} &times; {{pos .Width}} &times; {{pos .Height}}</li>
{{end}}</ul>
</div>
{{end}}

{{if .ChartHref}}
<h2>Volume by cargo</h2>
<p><a href="{{.ChartHref}}">Open the interactive chart</a></p>
{{end}}

<h2>Placement detail</h2>
<p>Coordinates are metres from the container origin (rear-left-bottom corner).</p>
{{range .Cargo}}
<h3>{{.Name}} ({{.Count}} unit(s))</h3>
<table>
<thead><tr><th>ID</th><th>X</th><th>Y</th><th>Z</th><th>L</th><th>W</th><th>H</th><th>Volume</th></tr></thead>
<tbody>
{{range .Placements}}<tr><td>{{.ItemID}}</td><td>{{pos .X}}</td><td>{{pos .Y}}</td><td>{{pos .Z}}</td><td>{{pos .Length}}</td><td>{{pos .Width}}</td><td>{{pos .Height}}</td><td>{{m3 .Volume}}</td></tr>
{{end}}</tbody>
</table>
{{end}}

</div>
</body>
</html>
`
