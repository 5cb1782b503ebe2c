// Package handler exposes the name registry over HTTP. It translates JSON
// bodies into service messages, maps domain failures onto statuses, and
// plays the host's part of the settlement split: attached funds are
// deposited and emitted transfers paid out only after the operation
// succeeded.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nomen/internal/bank"
	"nomen/internal/registry/models"
	"nomen/internal/registry/service"
	"nomen/pkg/platform/httputil"
	"nomen/pkg/requestcontext"
)

// Service is the slice of the registry service the handler consumes.
type Service interface {
	Execute(ctx context.Context, caller models.Identity, funds models.Funds, msg service.ExecuteMsg) ([]models.Transfer, error)
	Instantiate(ctx context.Context, deployer models.Identity, msg service.InstantiateMsg) (*models.Config, error)
	Migrate(ctx context.Context) (*models.VersionInfo, error)
	Resolve(ctx context.Context, name string) (*models.NameRecord, error)
	GetConfig(ctx context.Context) (*models.Config, error)
}

// Handler wires registry endpoints to the registry service.
type Handler struct {
	service Service
	ledger  bank.Ledger
	logger  *slog.Logger
}

// New constructs a registry handler with its dependencies.
func New(service Service, ledger bank.Ledger, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		ledger:  ledger,
		logger:  logger,
	}
}

// Register mounts the fee-gated operations. Mount behind auth.RequireCaller;
// every route here rejects requests without an authenticated caller.
func (h *Handler) Register(r chi.Router) {
	r.Post("/registry/register", h.HandleRegister)
	r.Post("/registry/transfer", h.HandleTransfer)
	r.Post("/registry/edit", h.HandleEdit)
	r.Put("/registry/config", h.HandleEditConfig)
	r.Post("/registry/refund", h.HandleRefund)
}

// RegisterQueries mounts the public read endpoints.
func (h *Handler) RegisterQueries(r chi.Router) {
	r.Get("/registry/names/{name}", h.HandleResolve)
	r.Get("/registry/config", h.HandleGetConfig)
}

// RegisterOps mounts the lifecycle endpoints. Mount behind the operator
// token middleware.
func (h *Handler) RegisterOps(r chi.Router) {
	r.Post("/ops/instantiate", h.HandleInstantiate)
	r.Post("/ops/migrate", h.HandleMigrate)
}

// HandleRegister handles POST /registry/register requests.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeJSON[registerRequest](w, r, h.logger)
	if !ok {
		return
	}
	funds, ok := h.parseFunds(w, req.Funds)
	if !ok {
		return
	}

	msg := service.RegisterMsg{Name: req.Name, Bio: req.Bio, Website: req.Website}
	if _, ok := h.execute(w, r, "register", caller, funds, msg); !ok {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleTransfer handles POST /registry/transfer requests.
func (h *Handler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeJSON[transferRequest](w, r, h.logger)
	if !ok {
		return
	}
	funds, ok := h.parseFunds(w, req.Funds)
	if !ok {
		return
	}

	msg := service.TransferMsg{Name: req.Name, To: req.To}
	if _, ok := h.execute(w, r, "transfer", caller, funds, msg); !ok {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleEdit handles POST /registry/edit requests.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeJSON[editRequest](w, r, h.logger)
	if !ok {
		return
	}
	funds, ok := h.parseFunds(w, req.Funds)
	if !ok {
		return
	}

	msg := service.EditMsg{Name: req.Name, Bio: req.Bio, Website: req.Website}
	if _, ok := h.execute(w, r, "edit", caller, funds, msg); !ok {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleEditConfig handles PUT /registry/config requests.
func (h *Handler) HandleEditConfig(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeJSON[editConfigRequest](w, r, h.logger)
	if !ok {
		return
	}
	funds, ok := h.parseFunds(w, req.Funds)
	if !ok {
		return
	}

	msg := service.EditconfMsg{}
	for _, price := range []struct {
		src *coinPayload
		dst **models.Coin
	}{
		{req.PurchasePrice, &msg.PurchasePrice},
		{req.TransferPrice, &msg.TransferPrice},
		{req.EditPrice, &msg.EditPrice},
	} {
		coin, err := toPrice(price.src)
		if err != nil {
			httputil.WriteError(w, httputil.NewError(http.StatusBadRequest, "bad_request", err.Error()))
			return
		}
		*price.dst = coin
	}

	if _, ok := h.execute(w, r, "editconf", caller, funds, msg); !ok {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRefund handles POST /registry/refund requests. The body is optional.
func (h *Handler) HandleRefund(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireCaller(w, r)
	if !ok {
		return
	}
	var req refundRequest
	if r.ContentLength != 0 {
		req, ok = httputil.DecodeJSON[refundRequest](w, r, h.logger)
		if !ok {
			return
		}
	}
	funds, ok := h.parseFunds(w, req.Funds)
	if !ok {
		return
	}

	transfers, ok := h.execute(w, r, "refund", caller, funds, service.RefundMsg{})
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromTransfers(transfers))
}

// HandleResolve handles GET /registry/names/{name} requests.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	record, err := h.service.Resolve(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve failed",
			"request_id", requestcontext.RequestID(ctx),
			"name", name,
			"error", err,
		)
		httputil.WriteError(w, mapError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromRecord(record))
}

// HandleGetConfig handles GET /registry/config requests.
func (h *Handler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cfg, err := h.service.GetConfig(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "config query failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, mapError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromConfig(cfg))
}

// HandleInstantiate handles POST /ops/instantiate requests.
func (h *Handler) HandleInstantiate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.DecodeJSON[instantiateRequest](w, r, h.logger)
	if !ok {
		return
	}
	if req.Deployer == "" {
		httputil.WriteError(w, httputil.NewError(http.StatusBadRequest, "bad_request", "deployer is required"))
		return
	}

	msg := service.InstantiateMsg{Admin: req.Admin}
	for _, price := range []struct {
		src *coinPayload
		dst **models.Coin
	}{
		{req.PurchasePrice, &msg.PurchasePrice},
		{req.TransferPrice, &msg.TransferPrice},
		{req.EditPrice, &msg.EditPrice},
	} {
		coin, err := toPrice(price.src)
		if err != nil {
			httputil.WriteError(w, httputil.NewError(http.StatusBadRequest, "bad_request", err.Error()))
			return
		}
		*price.dst = coin
	}

	cfg, err := h.service.Instantiate(ctx, models.Identity(req.Deployer), msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "instantiate failed",
			"request_id", requestcontext.RequestID(ctx),
			"deployer", req.Deployer,
			"error", err,
		)
		httputil.WriteError(w, mapError(err))
		return
	}

	h.logger.InfoContext(ctx, "registry instantiated",
		"request_id", requestcontext.RequestID(ctx),
		"owner", cfg.Owner.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, fromConfig(cfg))
}

// HandleMigrate handles POST /ops/migrate requests. The body is ignored.
func (h *Handler) HandleMigrate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	version, err := h.service.Migrate(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "migrate failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, mapError(err))
		return
	}

	h.logger.InfoContext(ctx, "registry migrated",
		"request_id", requestcontext.RequestID(ctx),
		"version", version.Version,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, migrateResponse{Name: version.Name, Version: version.Version})
}

// requireCaller pulls the authenticated caller from the context. The auth
// middleware should have rejected the request already; this guards routes
// mounted without it.
func (h *Handler) requireCaller(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	caller := requestcontext.Caller(r.Context())
	if caller == "" {
		httputil.WriteError(w, httputil.NewError(http.StatusUnauthorized, "unauthorized", "authentication required"))
		return "", false
	}
	return models.Identity(caller), true
}

// parseFunds converts the attached funds payload, rejecting malformed coins
// before the operation runs.
func (h *Handler) parseFunds(w http.ResponseWriter, payload fundsPayload) (models.Funds, bool) {
	funds, err := payload.toFunds()
	if err != nil {
		httputil.WriteError(w, httputil.NewError(http.StatusBadRequest, "bad_request", err.Error()))
		return nil, false
	}
	return funds, true
}

// execute runs one fee-gated operation and settles its financial effects.
// Attached funds are deposited only after the operation succeeded, so a
// failed request costs the caller nothing.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request, op string, caller models.Identity, funds models.Funds, msg service.ExecuteMsg) ([]models.Transfer, bool) {
	ctx := r.Context()
	start := time.Now()

	transfers, err := h.service.Execute(ctx, caller, funds, msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "registry operation failed",
			"request_id", requestcontext.RequestID(ctx),
			"operation", op,
			"caller", caller.String(),
			"error", err,
		)
		httputil.WriteError(w, mapError(err))
		return nil, false
	}

	if err := h.settle(ctx, funds, transfers); err != nil {
		h.logger.ErrorContext(ctx, "settlement failed",
			"request_id", requestcontext.RequestID(ctx),
			"operation", op,
			"caller", caller.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return nil, false
	}

	h.logger.InfoContext(ctx, "registry operation completed",
		"request_id", requestcontext.RequestID(ctx),
		"api_version", requestcontext.APIVersion(ctx),
		"operation", op,
		"caller", caller.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return transfers, true
}

// settle credits the attached funds to the registry account, then pays out
// the transfers the operation emitted.
func (h *Handler) settle(ctx context.Context, funds models.Funds, transfers []models.Transfer) error {
	if len(funds) > 0 {
		if err := h.ledger.Deposit(ctx, funds); err != nil {
			return fmt.Errorf("deposit attached funds: %w", err)
		}
	}
	for _, t := range transfers {
		if err := h.ledger.Send(ctx, t.To, t.Amount); err != nil {
			return fmt.Errorf("send %s to %s: %w", t.Amount, t.To, err)
		}
	}
	return nil
}
