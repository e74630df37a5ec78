package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/fetch"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/types"
)

// decodeJSON reads a size-limited JSON body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrPayloadTooLarge{Limit: maxErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return nil
}

// handleParseResume parses raw resume text into a structured resume.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ParseResumeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError(err))
		return
	}

	parsed := s.parser.ParseWithConfidence(req.Text)
	s.metrics.RecordParse("text", parsed.Confidence)
	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleUploadResume extracts text from an uploaded PDF, DOCX or plain text
// file and parses it.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, &ErrPayloadTooLarge{Limit: maxErr.Limit})
			return
		}
		s.writeError(w, r, &ErrValidation{Field: "file", Message: "required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	parsed := s.parser.ParseWithConfidence(ingestion.CleanText(text))
	s.logger.Debug("parsed uploaded resume",
		zap.String("filename", header.Filename),
		zap.Int("bytes", len(data)),
		zap.Int("confidence", parsed.Confidence),
	)
	s.metrics.RecordParse("upload", parsed.Confidence)
	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleMatch scores a structured resume against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError(err))
		return
	}

	report := s.matcher.CalculateMatch(req.Resume, req.JobDescription)
	s.metrics.RecordMatch("match", report.Score)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleMatchText scores raw resume text against a job description.
func (s *Server) handleMatchText(w http.ResponseWriter, r *http.Request) {
	var req types.MatchTextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError(err))
		return
	}

	report := s.matcher.CalculateMatchFromText(req.ResumeText, req.JobDescription)
	s.metrics.RecordMatch("text", report.Score)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleMatchBatch scores one resume text against several job descriptions.
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError(err))
		return
	}

	reports, err := s.matcher.MatchAll(r.Context(), req.ResumeText, req.JobDescriptions)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for _, report := range reports {
		s.metrics.RecordMatch("batch", report.Score)
	}
	s.jsonResponse(w, http.StatusOK, types.BatchMatchResponse{Reports: reports})
}

// handleMatchURL fetches a job posting and scores raw resume text against it.
func (s *Server) handleMatchURL(w http.ResponseWriter, r *http.Request) {
	var req types.MatchURLRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError(err))
		return
	}

	platform := fetch.DetectPlatform(req.JobURL)
	jobText, metadata, err := ingestion.IngestFromURL(r.Context(), req.JobURL, s.cfg.Fetch, s.logger)
	s.metrics.RecordJobFetch(string(platform), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	report := s.matcher.CalculateMatchFromText(req.ResumeText, jobText)
	s.metrics.RecordMatch("url", report.Score)
	s.jsonResponse(w, http.StatusOK, types.MatchURLResponse{
		Report: report,
		Job: types.JobSource{
			URL:       req.JobURL,
			Platform:  metadata.Platform,
			Title:     metadata.Title,
			Truncated: metadata.Truncated,
		},
	})
}

// handleScoreLabel describes the band of a score given as ?score=N.
func (s *Server) handleScoreLabel(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil || score < 0 || score > 100 {
		s.writeError(w, r, &ErrValidation{Field: "score", Message: "must be an integer between 0 and 100"})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ScoreLabelResponse{
		Score: score,
		Label: ats.ScoreLabel(score),
		Color: ats.ScoreColor(score),
	})
}
