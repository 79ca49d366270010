package resume

const resumeTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>{{.Name}} - Resume</title>
	<style>
		body {
			font-family: 'Arial', sans-serif;
			line-height: 1.6;
			color: #333;
			max-width: 800px;
			margin: 0 auto;
			padding: 40px 20px;
			background: #fff;
		}
		.header {
			text-align: center;
			margin-bottom: 30px;
			border-bottom: 2px solid #2563eb;
			padding-bottom: 20px;
		}
		.header h1 {
			margin: 0;
			color: #1f2937;
			font-size: 2.5em;
		}
		.header p {
			margin: 5px 0;
			color: #6b7280;
			font-size: 1.1em;
		}
		.section {
			margin: 30px 0;
		}
		.section h2 {
			color: #2563eb;
			border-bottom: 1px solid #e5e7eb;
			padding-bottom: 5px;
			font-size: 1.5em;
		}
		.item {
			margin: 15px 0;
		}
		.item h3 {
			margin: 0;
			color: #1f2937;
		}
		.item p {
			margin: 5px 0;
			color: #4b5563;
		}
		.skills {
			display: flex;
			flex-wrap: wrap;
			gap: 10px;
		}
		.skill {
			background: #e5e7eb;
			padding: 5px 12px;
			border-radius: 15px;
			font-size: 0.9em;
			color: #374151;
		}
		.contact-info {
			display: flex;
			justify-content: center;
			gap: 20px;
			flex-wrap: wrap;
			font-size: 0.95em;
		}
		.footer {
			margin-top: 40px;
			padding-top: 15px;
			border-top: 1px solid #e5e7eb;
			text-align: center;
			font-size: 0.85em;
			color: #9ca3af;
		}
		@media print {
			body { padding: 20px; }
			.header { page-break-after: avoid; }
		}
	</style>
</head>
<body>
	<div class="header">
		<h1>{{.Name}}</h1>
		<p>{{.Title}}</p>
		<div class="contact-info">
			<span>{{.Location}}</span>
			<span>{{.Email}}</span>
			{{range $label, $url := .Links}}<span>{{$url}}</span>{{end}}
		</div>
	</div>

	<div class="section">
		<h2>Summary</h2>
		<p>{{.Summary}}</p>
	</div>

	<div class="section">
		<h2>Education</h2>
		{{range .Education}}
		<div class="item">
			<h3>{{.Institution}}</h3>
			<p>{{.Program}} &middot; {{.Dates}}</p>
			<ul>
				{{range .Highlights}}<li>{{.}}</li>{{end}}
			</ul>
		</div>
		{{end}}
	</div>

	<div class="section">
		<h2>Certifications</h2>
		{{range .Certifications}}
		<div class="item">
			<h3>{{.Name}}</h3>
			<p>{{.Issuer}} &middot; {{.Issued}}</p>
		</div>
		{{end}}
	</div>

	<div class="section">
		<h2>Skills</h2>
		<div class="skills">
			{{range .Skills.Programming}}<span class="skill">{{.}}</span>{{end}}
			{{range .Skills.MLLibs}}<span class="skill">{{.}}</span>{{end}}
			{{range .Skills.Concepts}}<span class="skill">{{.}}</span>{{end}}
			{{range .Skills.Tooling}}<span class="skill">{{.}}</span>{{end}}
		</div>
	</div>

	<div class="section">
		<h2>Languages</h2>
		<ul>
			{{range .LanguagesSpoken}}<li>{{.}}</li>{{end}}
		</ul>
	</div>

	<div class="footer">
		Generated on {{.GeneratedAt}}
	</div>
</body>
</html>
`
