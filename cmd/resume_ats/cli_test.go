package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

const sampleResume = "Jane Doe\njane@example.com\n555-123-4567\nEDUCATION\nMIT, B.S. Computer Science\n2020 - 2024\nSKILLS\nPython, React, SQL"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	require.NoError(t, writeJSON(path, map[string]int{"score": 33}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"score\": 33\n}\n", string(data))
}

func TestLoadStructuredResume(t *testing.T) {
	dir := t.TempDir()

	t.Run("parse-resume output", func(t *testing.T) {
		path := writeFile(t, dir, "parsed.json", `{"resume": {"personal": {"full_name": "Jane Doe"}, "education": [], "experience": [], "projects": [], "skills": ["Go"]}, "confidence": 25}`)
		resume, err := loadStructuredResume(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", resume.Personal.FullName)
		assert.Equal(t, []string{"Go"}, resume.Skills)
	})

	t.Run("bare resume", func(t *testing.T) {
		path := writeFile(t, dir, "bare.json", `{"personal": {"full_name": "Jane Doe", "email": "", "phone": "", "github": "", "linkedin": ""}, "education": [], "experience": [], "projects": [], "skills": ["SQL"]}`)
		resume, err := loadStructuredResume(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"SQL"}, resume.Skills)
	})

	t.Run("not a resume", func(t *testing.T) {
		path := writeFile(t, dir, "other.json", `{"name": "Jane"}`)
		_, err := loadStructuredResume(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid structured resume")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadStructuredResume(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestParseResumeThenMatch(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.txt", sampleResume)
	jdPath := writeFile(t, dir, "backend.txt", "Looking for a Python developer with Kubernetes and Docker experience")
	parsedPath := filepath.Join(dir, "out", "resume.json")
	reportPath := filepath.Join(dir, "out", "report.json")

	rootCmd.SetArgs([]string{"parse-resume", "--in", resumePath, "--out", parsedPath, "--keep-text", filepath.Join(dir, "text")})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(parsedPath)
	require.NoError(t, err)
	var parsed types.ParsedResume
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "Jane Doe", parsed.Resume.Personal.FullName)
	assert.Equal(t, 100, parsed.Confidence)
	assert.FileExists(t, filepath.Join(dir, "text", "resume.cleaned.txt"))
	assert.FileExists(t, filepath.Join(dir, "text", "resume.meta.json"))

	rootCmd.SetArgs([]string{"match", "--resume", parsedPath, "--jd", jdPath, "--out", reportPath})
	require.NoError(t, rootCmd.Execute())

	data, err = os.ReadFile(reportPath)
	require.NoError(t, err)
	var report types.MatchReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 33, report.Score)
	assert.Equal(t, []string{"Python"}, report.Matched)
	assert.Equal(t, []string{"Kubernetes", "Docker"}, report.Missing)
}
