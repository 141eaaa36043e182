package webserver

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"wordcount/internal/cli"
	"wordcount/internal/counter"
)

//go:embed www/*
var wwwFiles embed.FS

// Server serves the upload form and the counting endpoint.
type Server struct {
	cfg Config
}

// NewServer returns a server bound to the given configuration.
// LoadTranslations must have been called before requests arrive.
func NewServer(cfg Config) *Server {
	return &Server{cfg: cfg}
}

// Routes returns the server's handler tree with response compression
// applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HomeHandler)
	mux.HandleFunc("/count", s.CountHandler)

	return CompressionMiddleware(mux)
}

// TemplateData holds data for template rendering
type TemplateData struct {
	Lang string
	T    Translation
}

// CountRequest is one decoded upload: which counts to show, the
// response format, and a display name for the file.
type CountRequest struct {
	FileName string
	Options  cli.Options
	Format   string
}

func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := GetLanguageFromRequest(r)

	data := TemplateData{
		Lang: lang,
		T:    GetTranslations(lang),
	}

	templateContent, err := wwwFiles.ReadFile("www/index_template.html")
	if err != nil {
		slog.Error("Error reading index_template.html", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	tmpl, err := template.New("index").Parse(string(templateContent))
	if err != nil {
		slog.Error("Error parsing template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err = tmpl.Execute(w, data)
	if err != nil {
		slog.Error("Error executing template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}
}

// CountHandler accepts a multipart upload and responds with its
// counts. The file is streamed straight through the counter; nothing
// is written to disk.
func (s *Server) CountHandler(w http.ResponseWriter, r *http.Request) {
	log := slog.With("handler", "CountHandler")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log.Info("Received count request", "remote_addr", r.RemoteAddr)

	lang := GetLanguageFromRequest(r)

	req, file, err := s.receiveRequest(w, r)
	if err != nil {
		log.Error("Failed to receive request", "error", err)
		WriteErrorResponseWithLang(w, err, http.StatusBadRequest, lang)

		return
	}
	defer file.Close()

	counts, err := counter.Count(file)
	if err != nil {
		log.Error("Counting failed", "error", err, "filename", req.FileName)
		WriteErrorResponseWithLang(w, fmt.Errorf("failed to read upload: %w", err), http.StatusInternalServerError, lang)

		return
	}

	res := Result{
		FileName:    req.FileName,
		Counts:      counts,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := FormatResult(res, req.Options, req.Format)
	if err != nil {
		log.Error("Failed to format result", "error", err)
		WriteErrorResponseWithLang(w, err, http.StatusBadRequest, lang)

		return
	}

	w.Header().Set("Content-Type", ContentType(req.Format))

	if _, err := w.Write(body); err != nil {
		log.Error("Failed to send response", "error", err)
		return
	}

	log.Info("Request processed", "filename", req.FileName,
		"lines", counts.Lines, "words", counts.Words, "chars", counts.Chars)
}

// receiveRequest parses the multipart form and validates the upload.
// On success the caller owns the returned file handle.
func (s *Server) receiveRequest(w http.ResponseWriter, r *http.Request) (CountRequest, multipart.File, error) {
	var req CountRequest

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSizeBytes)

	err := r.ParseMultipartForm(s.cfg.MaxFormSizeBytes)
	if err != nil {
		return req, nil, fmt.Errorf("form parsing error: %w", err)
	}

	req.Options = cli.Options{
		Lines: r.FormValue("lines") == "true",
		Words: r.FormValue("words") == "true",
		Chars: r.FormValue("chars") == "true",
	}

	// Same normalization as the command line: asking for nothing means
	// asking for everything.
	if !req.Options.Lines && !req.Options.Words && !req.Options.Chars {
		req.Options = cli.All()
	}

	req.Format = r.FormValue("format")
	if req.Format == "" {
		req.Format = "txt"
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return req, nil, fmt.Errorf("file retrieval error: %w", err)
	}

	err = ValidateFileUpload(file, header, s.cfg)
	if err != nil {
		file.Close()
		return req, nil, err
	}

	req.FileName = SanitizeFilename(header.Filename)

	return req, file, nil
}
