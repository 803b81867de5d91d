package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/medref-lab/medcorpus/pkg/cli"
)

const validDomain = `{
	"domain": "test-domain",
	"records": [
		{
			"id": "test-record",
			"type": "concept",
			"name": "Test Record",
			"levels": {
				"1": {"level": 1, "summary": "A summary.", "explanation": "An explanation."}
			},
			"tags": {
				"systems": ["neurological"],
				"topics": ["general"],
				"clinicalRelevance": "low",
				"examRelevance": {"usmle": false, "nbme": false}
			},
			"createdAt": "2026-01-01T00:00:00Z",
			"updatedAt": "2026-01-01T00:00:00Z",
			"version": 1,
			"status": "published"
		}
	]
}`

const danglingDomain = `{
	"domain": "test-domain",
	"records": [
		{
			"id": "test-record",
			"type": "concept",
			"name": "Test Record",
			"levels": {
				"1": {"level": 1, "summary": "A summary.", "explanation": "An explanation."}
			},
			"crossReferences": [
				{"targetId": "missing-record", "targetType": "concept", "relationship": "related", "label": "Missing"}
			],
			"tags": {
				"systems": ["neurological"],
				"topics": ["general"],
				"clinicalRelevance": "low",
				"examRelevance": {"usmle": false, "nbme": false}
			},
			"createdAt": "2026-01-01T00:00:00Z",
			"updatedAt": "2026-01-01T00:00:00Z",
			"version": 1,
			"status": "published"
		}
	]
}`

func writeContentDir(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "domain.json"), []byte(content), 0o600)
	gt.NoError(t, err).Required()
	return tmpDir
}

func TestRun_ValidateCommand_ValidContent(t *testing.T) {
	dir := writeContentDir(t, validDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "validate", "--no-embedded", "--content-dir", dir}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_DanglingStrict(t *testing.T) {
	dir := writeContentDir(t, danglingDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "validate", "--no-embedded", "--content-dir", dir}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_DanglingPermissive(t *testing.T) {
	dir := writeContentDir(t, danglingDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "validate", "--no-embedded", "--content-dir", dir, "--policy", "permissive"}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_JSONFormat(t *testing.T) {
	dir := writeContentDir(t, validDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "validate", "--no-embedded", "--content-dir", dir, "--format", "json"}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_EmbeddedContent(t *testing.T) {
	err := cli.Run(context.Background(), []string{"medcorpus", "validate"}, "test")
	gt.NoError(t, err)
}

func TestRun_SearchCommand(t *testing.T) {
	dir := writeContentDir(t, validDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "search", "--no-embedded", "--content-dir", dir, "summary"}, "test")
	gt.NoError(t, err)
}

func TestRun_SearchCommand_MissingQuery(t *testing.T) {
	err := cli.Run(context.Background(), []string{"medcorpus", "search"}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ShowCommand(t *testing.T) {
	dir := writeContentDir(t, validDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "show", "--no-embedded", "--content-dir", dir, "--depth", "2", "test-record"}, "test")
	gt.NoError(t, err)
}

func TestRun_ShowCommand_UnknownRecord(t *testing.T) {
	dir := writeContentDir(t, validDomain)

	err := cli.Run(context.Background(),
		[]string{"medcorpus", "show", "--no-embedded", "--content-dir", dir, "nope"}, "test")
	gt.Value(t, err).NotNil()
}
