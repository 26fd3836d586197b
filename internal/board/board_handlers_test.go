package board

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(h *BoardHandlers) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/resources", h.ListResources).Methods(http.MethodGet)
	r.HandleFunc("/api/resources", h.CreateResource).Methods(http.MethodPost)
	r.HandleFunc("/api/events", h.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/events", h.CreateEvent).Methods(http.MethodPost)
	return r
}

func authed(req *http.Request) *http.Request {
	return req.WithContext(common.WithIdentity(req.Context(), common.Identity{UserID: "alice"}))
}

func TestBoardHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockBoardService(ctrl)
	router := newTestRouter(NewBoardHandlers(mockSvc))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func()
		wantStatus int
		wantField  string
	}{
		{
			name:   "list resources by category",
			method: http.MethodGet,
			path:   "/api/resources?category=CS",
			setup: func() {
				mockSvc.EXPECT().ListResources(gomock.Any(), "CS").Return([]aggregate.ResourceView{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "create resource",
			method: http.MethodPost,
			path:   "/api/resources",
			body:   `{"title":"Notes","category":"CS","fileUrl":"https://x.example.com/n.pdf"}`,
			setup: func() {
				mockSvc.EXPECT().CreateResource(gomock.Any(), "alice", CreateResourceInput{
					Title: "Notes", Category: "CS", FileURL: "https://x.example.com/n.pdf",
				}).Return(&dbmysql.Resource{ID: 1}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "create resource invalid",
			method: http.MethodPost,
			path:   "/api/resources",
			body:   `{"title":"Notes"}`,
			setup: func() {
				mockSvc.EXPECT().CreateResource(gomock.Any(), "alice", gomock.Any()).
					Return(nil, common.NewValidationError("category", "Required"))
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "category",
		},
		{
			name:   "list events",
			method: http.MethodGet,
			path:   "/api/events",
			setup: func() {
				mockSvc.EXPECT().ListEvents(gomock.Any()).Return([]aggregate.EventView{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "create event",
			method: http.MethodPost,
			path:   "/api/events",
			body:   `{"title":"Talk","description":"d","date":"2025-02-15","location":"Hall"}`,
			setup: func() {
				mockSvc.EXPECT().CreateEvent(gomock.Any(), "alice", gomock.Any()).Return(&dbmysql.Event{ID: 2}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			path:       "/api/events",
			body:       `[`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "numeric date",
			method:     http.MethodPost,
			path:       "/api/events",
			body:       `{"title":"Talk","description":"d","date":12345,"location":"Hall"}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantField:  "date",
		},
		{
			name:       "numeric category",
			method:     http.MethodPost,
			path:       "/api/resources",
			body:       `{"title":"Notes","category":7,"fileUrl":"https://x.example.com/n.pdf"}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantField:  "category",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			req := authed(httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantField != "" {
				var body common.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tc.wantField, body.Field)
			}
		})
	}
}
