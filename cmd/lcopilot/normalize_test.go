package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripclass/lcopilot/internal/common"
)

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		data    string
	}{
		{name: "valid object", data: `{"job_id": "j-1"}`},
		{name: "empty object", data: `{}`},
		{name: "empty input", data: "", wantErr: common.ErrEmptyPayload},
		{name: "not json", data: "hello", wantErr: common.ErrInvalidPayload},
		{name: "json array", data: `[1, 2]`, wantErr: common.ErrInvalidPayload},
		{name: "json scalar", data: `42`, wantErr: common.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := decodePayload([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, raw)
		})
	}
}

func TestReadPayloadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"job_id": "j-9"}`), 0600))

	raw, err := readPayloadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "j-9", raw["job_id"])

	_, err = readPayloadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
