package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
		Bio     *string  `json:"bio"`
	}

	tests := []struct {
		name      string
		raw       string
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{name: "valid", raw: `{"content":"hi","tags":["go"]}`},
		{name: "empty body", raw: ``},
		{name: "number for string", raw: `{"content":5}`, wantErr: true, wantField: "content", wantMsg: "Expected string, received number"},
		{name: "string for array", raw: `{"tags":"go"}`, wantErr: true, wantField: "tags", wantMsg: "Expected array, received string"},
		{name: "bool for optional string", raw: `{"bio":true}`, wantErr: true, wantField: "bio", wantMsg: "Expected string, received bool"},
		{name: "truncated", raw: `{"content":`, wantErr: true, wantMsg: "Invalid request body"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.raw))
			var dst body
			err := DecodeJSON(req, &dst)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
			assert.Equal(t, tc.wantMsg, verr.Message)
		})
	}
}

func TestWriteError_ValidationCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, NewValidationError("content", "Expected string, received number"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Expected string, received number","field":"content"}`, rec.Body.String())
}
