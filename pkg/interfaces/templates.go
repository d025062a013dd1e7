package interfaces

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}} · Groupie Tracker</title>
<link rel="stylesheet" href="/static/css/style.css">
<style>
.slider-track{height:5px;border-radius:5px;position:absolute;left:0;right:0;top:50%;transform:translateY(-50%)}
.suggestions{list-style:none;display:none}
.suggestions.visible{display:block}
.suggestions li.active{background:#3264fe;color:#fff}
.empty-state{color:#6b6b80;padding:24px 0}
</style>
</head>
<body>
<nav>
  <span class="brand">Groupie Tracker</span>
  <a href="/">Artists</a>
  <a href="/search">Search</a>
</nav>
<main>
{{template "content" .}}
</main>
<footer class="dim">generated {{fmtTime .Generated}}</footer>
</body>
</html>
{{end}}
`

const tmplGrid = `
{{define "content"}}
<h1>Artists</h1>
<section class="artist-grid" data-role="artist-grid">{{.Cards}}</section>
{{end}}
`

const tmplSearch = `
{{define "content"}}
<h1>Search</h1>
<form id="filterForm" method="GET" action="/search" autocomplete="off">
  <div class="search-box">
    <input id="globalSearch" name="q" type="search" placeholder="Artist, member, location, date" value="{{.Filters.Query}}">
    {{if .Suggestions}}{{.Suggestions}}{{else}}<ul id="suggestions" class="suggestions"></ul>{{end}}
  </div>
  <fieldset class="filters">
    <label>Name <input name="name" value="{{.Filters.Name}}"></label>
    <label>Location <input name="location" value="{{.Filters.Location}}"></label>
    <label>First album <input name="firstAlbum" value="{{.Filters.FirstAlbum}}"></label>
    <label>Creation date <input name="creationDate" value="{{.Filters.CreationDate}}"></label>
  </fieldset>
  <fieldset class="members">
    <legend>Members <span id="range1">{{.Slider.LabelOne}}</span> - <span id="range2">{{.Slider.LabelTwo}}</span></legend>
    <div class="slider-container">
      <div class="slider-track" style="background: {{.Fill}}"></div>
      <input type="range" id="slider-1" name="min" min="0" max="{{.Slider.Max}}" value="{{.Slider.SliderOne}}">
      <input type="range" id="slider-2" name="max" min="0" max="{{.Slider.Max}}" value="{{.Slider.SliderTwo}}">
    </div>
  </fieldset>
  <button type="submit">Filter</button>
</form>
<p class="dim">{{.Total}} {{if eq .Total 1}}result{{else}}results{{end}}{{if not .LoadedAt.IsZero}} · catalog loaded {{fmtTime .LoadedAt}}{{end}}</p>
<section id="results">{{.Results}}</section>
{{end}}
`
