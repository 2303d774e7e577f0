// Package server is the HTTP surface around the validation core: the
// certificate upload endpoint plus the demo internship/credit API the
// mentor workflow talks to. Demo state is in-memory; persistence is an
// external collaborator's concern.
package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/praktiki/certverify/internal/common"
	"github.com/praktiki/certverify/internal/similarity"
	"github.com/praktiki/certverify/internal/textnorm"
	"github.com/praktiki/certverify/internal/validator"
	"github.com/praktiki/certverify/schemas"
)

type demoUser struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type Service struct {
	validator  *validator.Validator
	scorer     *similarity.Scorer
	normalizer *textnorm.Normalizer
	cfg        common.ServerConfig
	logger     *slog.Logger

	submissionSchema *jsonschema.Schema

	mu          sync.Mutex
	users       map[string]demoUser
	internships map[string]*Internship
	runs        map[string]*ReconcileRun
	credits     map[string]*CreditRecord // keyed by token
}

func NewService(
	v *validator.Validator,
	scorer *similarity.Scorer,
	normalizer *textnorm.Normalizer,
	cfg common.ServerConfig,
	logger *slog.Logger,
) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := jsonschema.CompileString("schemas/internship.json", schemas.InternshipSubmission)
	if err != nil {
		return nil, common.WrapError(err, "compile internship schema")
	}
	return &Service{
		validator:        v,
		scorer:           scorer,
		normalizer:       normalizer,
		cfg:              cfg,
		logger:           logger,
		submissionSchema: schema,
		users: map[string]demoUser{
			"student": {Username: "student", Password: "12345", Role: "student"},
			"mentor":  {Username: "mentor", Password: "admin", Role: "mentor"},
		},
		internships: make(map[string]*Internship),
		runs:        make(map[string]*ReconcileRun),
		credits:     make(map[string]*CreditRecord),
	}, nil
}

func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/validate", s.handleValidate)
	r.Post("/login", s.handleLogin)
	r.Post("/internships", s.handleSubmitInternship)
	r.Post("/internships/{id}/reconcile", s.handleReconcile)
	r.Post("/credits/upload", s.handleCreditUpload)
	r.Get("/credits/status/{token}", s.handleCreditStatus)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}
