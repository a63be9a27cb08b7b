// Package transport exposes the ledger over HTTP.
package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustrent/trustchain-backend/internal/ledger/canonical"
	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"github.com/trustrent/trustchain-backend/internal/ledger/service"
	"go.uber.org/zap"
)

// LedgerAPI is the slice of the ledger service the HTTP layer needs.
type LedgerAPI interface {
	Append(ctx context.Context, req service.AppendRequest) (*model.Block, error)
	History(ctx context.Context, propertyID any) ([]model.Block, error)
	CurrentOwner(ctx context.Context, propertyID any) (int64, bool, error)
	VerifyChain(ctx context.Context) (*model.AuditReport, error)
}

// ContractsAPI is the slice of the contract service the HTTP layer needs.
type ContractsAPI interface {
	CreateVerification(ctx context.Context, propertyID any, ownerID int64) (*model.Contract, error)
	CreateTransfer(ctx context.Context, propertyID any, currentOwnerID, newOwnerID int64, documentHash *string, verifiedBy *int64) (*model.Contract, error)
	Activate(ctx context.Context, contractID string) (*model.Contract, error)
	Cancel(ctx context.Context, contractID string) (*model.Contract, error)
	Execute(ctx context.Context, contractID string) (*service.ExecutionResult, error)
	Status(ctx context.Context, contractID string) (*model.Contract, error)
}

// Handler wires the ledger and contract services into echo routes.
type Handler struct {
	ledger    LedgerAPI
	contracts ContractsAPI
	logger    *zap.Logger
}

// NewHandler constructs a Handler.
func NewHandler(ledger LedgerAPI, contracts ContractsAPI, logger *zap.Logger) (*Handler, error) {
	if ledger == nil {
		return nil, errors.New("ledger api is required")
	}
	if contracts == nil {
		return nil, errors.New("contracts api is required")
	}

	return &Handler{
		ledger:    ledger,
		contracts: contracts,
		logger:    logger.Named("http"),
	}, nil
}

// Register attaches all ledger routes to the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/ledger")
	g.POST("/register", h.RegisterProperty)
	g.GET("/verify-chain", h.VerifyChain)
	g.GET("/properties/:property_id/history", h.PropertyHistory)
	g.GET("/verify-ownership", h.VerifyOwnership)

	g.POST("/contracts", h.CreateContract)
	g.GET("/contracts/:contract_id", h.ContractStatus)
	g.POST("/contracts/:contract_id/activate", h.ActivateContract)
	g.POST("/contracts/:contract_id/execute", h.ExecuteContract)
	g.POST("/contracts/:contract_id/cancel", h.CancelContract)
}

// Health reports process liveness.
func (h *Handler) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type registerRequest struct {
	PropertyID   any     `json:"property_id" validate:"required"`
	OwnerID      int64   `json:"owner_id" validate:"required"`
	DocumentHash *string `json:"document_hash,omitempty" validate:"omitempty,len=64,hexadecimal"`
	VerifiedBy   *int64  `json:"verified_by,omitempty"`
}

type registerResponse struct {
	Message string    `json:"message"`
	Block   blockJSON `json:"block"`
}

// RegisterProperty appends a new verification block for a property.
func (h *Handler) RegisterProperty(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	block, err := h.ledger.Append(ctx.Request().Context(), service.AppendRequest{
		PropertyID:   req.PropertyID,
		OwnerID:      req.OwnerID,
		DocumentHash: req.DocumentHash,
		VerifiedBy:   req.VerifiedBy,
	})
	if err != nil {
		return h.serviceError(err)
	}

	return ctx.JSON(http.StatusCreated, registerResponse{
		Message: "property registered on chain",
		Block:   toBlockJSON(*block),
	})
}

// VerifyChain runs a full chain audit and reports the outcome.
func (h *Handler) VerifyChain(ctx echo.Context) error {
	report, err := h.ledger.VerifyChain(ctx.Request().Context())
	if err != nil {
		return h.serviceError(err)
	}
	return ctx.JSON(http.StatusOK, report)
}

type historyResponse struct {
	History []blockJSON `json:"history"`
}

// PropertyHistory returns all blocks for a property in block number order.
func (h *Handler) PropertyHistory(ctx echo.Context) error {
	blocks, err := h.ledger.History(ctx.Request().Context(), ctx.Param("property_id"))
	if err != nil {
		return h.serviceError(err)
	}

	out := historyResponse{History: make([]blockJSON, 0, len(blocks))}
	for _, block := range blocks {
		out.History = append(out.History, toBlockJSON(block))
	}
	return ctx.JSON(http.StatusOK, out)
}

type ownershipResponse struct {
	IsOwner bool   `json:"is_owner"`
	Message string `json:"message"`
}

// VerifyOwnership checks whether the given owner holds the property according
// to the latest block.
func (h *Handler) VerifyOwnership(ctx echo.Context) error {
	propertyID := ctx.QueryParam("property_id")
	ownerParam := ctx.QueryParam("owner_id")
	if propertyID == "" || ownerParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "property_id and owner_id are required")
	}
	ownerID, err := parseInt64(ownerParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "owner_id must be an integer")
	}

	current, found, err := h.ledger.CurrentOwner(ctx.Request().Context(), propertyID)
	if err != nil {
		return h.serviceError(err)
	}

	res := ownershipResponse{}
	switch {
	case !found:
		res.Message = "property not found on chain"
	case current == ownerID:
		res.IsOwner = true
		res.Message = "ownership verified"
	default:
		res.Message = "ownership verification failed"
	}
	return ctx.JSON(http.StatusOK, res)
}

type createContractRequest struct {
	Type         string  `json:"type" validate:"required,oneof=ownership_verification ownership_transfer"`
	PropertyID   any     `json:"property_id" validate:"required"`
	OwnerID      int64   `json:"owner_id" validate:"required"`
	NewOwnerID   *int64  `json:"new_owner_id,omitempty"`
	DocumentHash *string `json:"document_hash,omitempty" validate:"omitempty,len=64,hexadecimal"`
	VerifiedBy   *int64  `json:"verified_by,omitempty"`
}

// CreateContract creates a pending verification or transfer contract.
func (h *Handler) CreateContract(ctx echo.Context) error {
	var req createContractRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := ctx.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var contract *model.Contract
	var err error
	switch model.ContractType(req.Type) {
	case model.ContractOwnershipVerification:
		contract, err = h.contracts.CreateVerification(ctx.Request().Context(), req.PropertyID, req.OwnerID)
	case model.ContractOwnershipTransfer:
		if req.NewOwnerID == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "new_owner_id is required for transfer contracts")
		}
		contract, err = h.contracts.CreateTransfer(ctx.Request().Context(), req.PropertyID, req.OwnerID, *req.NewOwnerID, req.DocumentHash, req.VerifiedBy)
	}
	if err != nil {
		return h.serviceError(err)
	}

	return ctx.JSON(http.StatusCreated, toContractJSON(contract))
}

// ContractStatus returns the contract by its public identifier.
func (h *Handler) ContractStatus(ctx echo.Context) error {
	contract, err := h.contracts.Status(ctx.Request().Context(), ctx.Param("contract_id"))
	if err != nil {
		return h.serviceError(err)
	}
	return ctx.JSON(http.StatusOK, toContractJSON(contract))
}

// ActivateContract transitions a pending contract to active.
func (h *Handler) ActivateContract(ctx echo.Context) error {
	contract, err := h.contracts.Activate(ctx.Request().Context(), ctx.Param("contract_id"))
	if err != nil {
		return h.serviceError(err)
	}
	return ctx.JSON(http.StatusOK, toContractJSON(contract))
}

// CancelContract transitions a pending or active contract to cancelled.
func (h *Handler) CancelContract(ctx echo.Context) error {
	contract, err := h.contracts.Cancel(ctx.Request().Context(), ctx.Param("contract_id"))
	if err != nil {
		return h.serviceError(err)
	}
	return ctx.JSON(http.StatusOK, toContractJSON(contract))
}

type executeResponse struct {
	Contract contractJSON `json:"contract"`
	IsOwner  *bool        `json:"is_owner,omitempty"`
	Block    *blockJSON   `json:"block,omitempty"`
}

// ExecuteContract runs an active contract.
func (h *Handler) ExecuteContract(ctx echo.Context) error {
	result, err := h.contracts.Execute(ctx.Request().Context(), ctx.Param("contract_id"))
	if err != nil {
		return h.serviceError(err)
	}

	res := executeResponse{
		Contract: toContractJSON(result.Contract),
		IsOwner:  result.IsOwner,
	}
	if result.Block != nil {
		block := toBlockJSON(*result.Block)
		res.Block = &block
	}
	return ctx.JSON(http.StatusOK, res)
}

// serviceError maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500 with the message withheld from the client.
func (h *Handler) serviceError(err error) error {
	switch {
	case errors.Is(err, canonical.ErrMalformedPropertyID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrContractNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrAppendConflict), errors.Is(err, model.ErrInvalidContractState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
