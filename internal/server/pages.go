package server

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/sirupsen/logrus"
)

var pageFuncs = template.FuncMap{
	"truncate": func(s string, length int) string {
		if len(s) <= length {
			return s
		}
		return s[:length] + "..."
	},
}

var (
	indexTemplate     = template.Must(template.New("index").Funcs(pageFuncs).Parse(indexPageHTML))
	resultsTemplate   = template.Must(template.New("results").Funcs(pageFuncs).Parse(resultsPageHTML))
	extractedTemplate = template.Must(template.New("extracted").Funcs(pageFuncs).Parse(extractedPageHTML))
)

type resultsPageData struct {
	OriginalNews string
	Results      []models.HeadlineMatches
	CurrentTime  string
}

type extractedPageData struct {
	OriginalNews string
	Articles     []models.Article
}

func (s *Server) renderHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logrus.Errorf("Failed to render %s page: %v", tmpl.Name(), err)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderHTML(w, indexTemplate, nil)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	var req struct {
		News      string   `json:"news"`
		Headlines []string `json:"headlines"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if len(req.Headlines) == 0 {
		writeError(w, http.StatusBadRequest, "No headlines provided")
		return
	}

	ctx := r.Context()
	var results []models.HeadlineMatches

	for _, headline := range req.Headlines {
		urls, err := s.search.Search(ctx, headline)
		if err != nil {
			logrus.Errorf("Reference search failed for %q: %v", headline, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		found := s.extractor.ExtractTop(ctx, urls, 3)
		if len(found) == 0 {
			continue
		}
		results = append(results, models.HeadlineMatches{Headline: headline, Articles: found})
	}

	s.count(&s.metrics.Searches)
	s.renderHTML(w, resultsTemplate, resultsPageData{
		OriginalNews: req.News,
		Results:      results,
		CurrentTime:  time.Now().Format("2006-01-02 15:04:05"),
	})
}

func (s *Server) handleExtractedContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		News string   `json:"news"`
		URLs []string `json:"urls"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if len(req.URLs) == 0 {
		writeError(w, http.StatusBadRequest, "No URLs provided")
		return
	}

	found := s.extractor.ExtractTop(r.Context(), req.URLs, 3)

	s.renderHTML(w, extractedTemplate, extractedPageData{
		OriginalNews: req.News,
		Articles:     found,
	})
}

const indexPageHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>NewsGuard</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px auto; max-width: 720px; color: #1f2937; }
        .header { background-color: #1d4ed8; color: white; padding: 24px; border-radius: 6px; }
        .tool { border: 1px solid #e5e7eb; border-radius: 6px; padding: 16px; margin: 16px 0; }
        .tool h2 { margin-top: 0; font-size: 1.1em; }
        .endpoint { font-family: monospace; background-color: #f3f4f6; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>NewsGuard</h1>
        <p>Misinformation and AI-generated content detection for news and social media forwards.</p>
    </div>

    <div class="tool">
        <h2>Text verification</h2>
        <p>Checks WhatsApp forwards, tweets and news pastes for misinformation.
           Supports English, Hindi and Marathi.</p>
        <p><span class="endpoint">POST /verify_text</span></p>
    </div>

    <div class="tool">
        <h2>Image detection</h2>
        <p>Flags AI-generated images and lists the artifacts behind the call.</p>
        <p><span class="endpoint">POST /detect_image</span></p>
    </div>

    <div class="tool">
        <h2>Source comparison</h2>
        <p>Finds reference coverage for a story and scores the original against it.</p>
        <p><span class="endpoint">POST /extract</span> &middot;
           <span class="endpoint">POST /results</span> &middot;
           <span class="endpoint">POST /analyze_authenticity</span></p>
    </div>
</body>
</html>
`

const resultsPageHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Reference Coverage</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px auto; max-width: 860px; color: #1f2937; }
        .header { background-color: #1d4ed8; color: white; padding: 20px; border-radius: 6px; }
        .original { background-color: #f3f4f6; padding: 14px; margin: 20px 0; border-radius: 6px; }
        .headline { margin: 28px 0 8px; font-size: 1.2em; }
        .article { border: 1px solid #e5e7eb; border-left: 4px solid #1d4ed8; border-radius: 4px; padding: 12px; margin: 10px 0; }
        .article-title { font-weight: bold; margin-bottom: 4px; }
        .article-meta { color: #6b7280; font-size: 0.9em; margin-bottom: 6px; }
        .badge { display: inline-block; color: white; font-size: 0.8em; padding: 2px 8px; border-radius: 10px; margin-right: 6px; }
        .footer { color: #6b7280; font-size: 0.85em; margin-top: 30px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Reference Coverage</h1>
    </div>

    {{if .OriginalNews}}
    <div class="original">
        <strong>Original text</strong>
        <p>{{truncate .OriginalNews 400}}</p>
    </div>
    {{end}}

    {{if .Results}}
        {{range .Results}}
        <div class="headline">{{.Headline}}</div>
        {{range .Articles}}
        <div class="article">
            <div class="article-title"><a href="{{.URL}}" target="_blank">{{.Title}}</a></div>
            <div class="article-meta">
                {{.SourceInfo.Name}}
                <span class="badge" style="background-color: {{.SourceInfo.BiasColor}}">{{.SourceInfo.BiasLabel}}</span>
                <span class="badge" style="background-color: {{.SourceInfo.CredibilityColor}}">{{.SourceInfo.CredibilityLabel}}</span>
            </div>
            {{if .Description}}<p>{{.Description}}</p>{{end}}
        </div>
        {{end}}
        {{end}}
    {{else}}
    <p>No reference articles were found for the extracted headlines.</p>
    {{end}}

    <div class="footer">Generated at {{.CurrentTime}}</div>
</body>
</html>
`

const extractedPageHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Extracted Articles</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px auto; max-width: 860px; color: #1f2937; }
        .header { background-color: #1d4ed8; color: white; padding: 20px; border-radius: 6px; }
        .original { background-color: #f3f4f6; padding: 14px; margin: 20px 0; border-radius: 6px; }
        .article { border: 1px solid #e5e7eb; border-radius: 4px; padding: 14px; margin: 14px 0; }
        .article-title { font-weight: bold; margin-bottom: 4px; }
        .article-meta { color: #6b7280; font-size: 0.9em; margin-bottom: 8px; }
        .badge { display: inline-block; color: white; font-size: 0.8em; padding: 2px 8px; border-radius: 10px; margin-right: 6px; }
        .content { white-space: pre-line; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Extracted Articles</h1>
    </div>

    {{if .OriginalNews}}
    <div class="original">
        <strong>Original text</strong>
        <p>{{truncate .OriginalNews 400}}</p>
    </div>
    {{end}}

    {{if .Articles}}
        {{range .Articles}}
        <div class="article">
            <div class="article-title"><a href="{{.URL}}" target="_blank">{{.Title}}</a></div>
            <div class="article-meta">
                {{.SourceInfo.Name}}
                <span class="badge" style="background-color: {{.SourceInfo.BiasColor}}">{{.SourceInfo.BiasLabel}}</span>
                <span class="badge" style="background-color: {{.SourceInfo.CredibilityColor}}">{{.SourceInfo.CredibilityLabel}}</span>
            </div>
            <div class="content">{{truncate .Content 1200}}</div>
        </div>
        {{end}}
    {{else}}
    <p>None of the provided links could be read.</p>
    {{end}}
</body>
</html>
`
