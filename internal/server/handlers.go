package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/praktiki/certverify/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleValidate accepts a multipart certificate upload, stores it under
// a per-request unique name, and runs the validation pipeline.
func (s *Service) handleValidate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "no file selected")
		return
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		s.logger.Error("upload dir", "error", err)
		writeError(w, http.StatusInternalServerError, "storing upload failed")
		return
	}

	// unique name per request; uploads never share scratch files
	name := uuid.NewString() + "-" + filepath.Base(header.Filename)
	path := filepath.Join(s.cfg.UploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		s.logger.Error("create upload", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "storing upload failed")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		writeError(w, http.StatusInternalServerError, "storing upload failed")
		return
	}
	_ = dst.Close()

	result, err := s.validator.Validate(r.Context(), path)
	if err != nil {
		// unreadable upload is the only error the core propagates
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	v := common.NewValidator()
	v.Field("username", username, common.Required, common.MaxLength(64))
	v.Field("password", password, common.Required)
	if v.HasErrors() {
		writeError(w, http.StatusBadRequest, v.ErrorMessage())
		return
	}

	s.mu.Lock()
	user, ok := s.users[username]
	s.mu.Unlock()

	if !ok || user.Password != password {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"role":     user.Role,
	})
}
