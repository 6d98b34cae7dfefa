// Package webui serves a directory of static files to a browser, and accepts
// JSON posted back from it. Every response allows cross-origin requests, so
// pages served from elsewhere (e.g. a microcontroller) can post here.
package webui

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "webui",
})

// Posted bodies larger than this are cut off.
const maxBody = 1 << 20

var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
}

// ContentType returns the type served for a file name, by extension.
func ContentType(name string) string {
	ct, ok := contentTypes[path.Ext(name)]
	if !ok {
		return "application/octet-stream"
	}

	return ct
}

type Server struct {
	files fs.FS
}

// New returns a handler serving files from fsys, usually os.DirFS.
func New(fsys fs.FS) *Server {
	return &Server{files: fsys}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodGet:
		s.get(w, r)

	case http.MethodPost:
		s.post(w, r)

	case http.MethodOptions:
		h.Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if p == "/" {
		p = "/index.html"
	}

	// Clean against the root, so ".." can't climb out of the directory.
	name := strings.TrimPrefix(path.Clean("/"+p), "/")

	data, err := s.read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			logger.Infof("GET %s: not found", p)
			http.Error(w, "File not found: "+p, http.StatusNotFound)
			return
		}

		logger.Warnf("GET %s: %s", p, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Debugf("GET %s: %d bytes", p, len(data))
	w.Header().Set("Content-Type", ContentType(name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// read returns the contents of a regular file. Directories are not found.
func (s *Server) read(name string) ([]byte, error) {
	fi, err := fs.Stat(s.files, name)
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		return nil, fs.ErrNotExist
	}

	return fs.ReadFile(s.files, name)
}

func (s *Server) post(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		logger.Warnf("POST %s: %s (while reading body)", r.URL.Path, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		logger.Infof("received invalid JSON: %s", body)
	} else {
		logger.WithField("data", data).Infof("received data")
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "Data received!")
}
