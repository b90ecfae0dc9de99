package server

import (
	"context"
	"net/http"

	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/pipeline"
)

const maxUploadBytes = 32 << 20 // multipart memory cap

// handleUpload serves POST /upload_file: multipart field "file" in,
// structured analysis or typed error out. The whole request runs under the
// upload deadline so a hung OCR or model backend cannot pin the worker.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.uploadTimeout)
	defer cancel()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		// The body is not multipart at all; "no file provided" is reserved
		// for well-formed requests missing the file field.
		writeError(w, common.NewError(common.KindValidation, "malformed multipart body", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.NewError(common.KindNoFile, "no file provided", err))
		return
	}
	defer func() {
		_ = file.Close()
	}()
	if header.Filename == "" {
		writeError(w, common.Errorf(common.KindNoFile, "no selected file"))
		return
	}

	analysis, err := s.pipeline.Run(ctx, pipeline.Upload{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"analysis": analysis})
}
