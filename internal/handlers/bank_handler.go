package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bankist/internal/errors"
	"bankist/internal/pagination"
	"bankist/internal/services"
	"bankist/internal/session"
)

// BankHandler serves the session over HTTP.
type BankHandler struct {
	bankService services.BankServicer
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(bankService services.BankServicer) *BankHandler {
	return &BankHandler{bankService: bankService}
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Username string `json:"username" binding:"required,username" example:"js"`
	PIN      string `json:"pin" binding:"required,pin" example:"2222"`
}

// TransferRequest represents the transfer form.
type TransferRequest struct {
	To     string `json:"to" binding:"required,username" example:"aa"`
	Amount string `json:"amount" binding:"required,amount" example:"100.50"`
}

// LoanRequest represents the loan form. Fractions are dropped.
type LoanRequest struct {
	Amount string `json:"amount" binding:"required,amount" example:"1000"`
}

// CloseRequest represents the close-account form.
type CloseRequest struct {
	Username string `json:"username" binding:"required,username" example:"js"`
	PIN      string `json:"pin" binding:"required,pin" example:"2222"`
}

// Login handles login
// @Summary     Log in
// @Description Start a session for a username and PIN. A failed login leaves any current session in place.
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Credentials"
// @Success     200 {object} view.Snapshot "Screen after login"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Authentication failed"
// @Router      /login [post]
func (h *BankHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := session.ParseLogin(req.Username, req.PIN)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.dispatch(c, cmd)
}

// Logout handles logout
// @Summary     Log out
// @Tags        session
// @Produce     json
// @Success     200 {object} view.Snapshot "Screen after logout"
// @Router      /logout [post]
func (h *BankHandler) Logout(c *gin.Context) {
	h.dispatch(c, session.Logout{})
}

// Transfer handles money transfers
// @Summary     Transfer money
// @Description Move money from the logged in account to another account.
// @Tags        banking
// @Accept      json
// @Produce     json
// @Param       request body TransferRequest true "Transfer details"
// @Success     200 {object} view.Snapshot "Screen after the transfer"
// @Failure     400 {object} ErrorResponse "Invalid amount, unknown recipient, self-transfer or insufficient balance"
// @Failure     401 {object} ErrorResponse "No active session"
// @Router      /transfer [post]
func (h *BankHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := session.ParseTransfer(req.To, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.dispatch(c, cmd)
}

// Loan handles loan requests
// @Summary     Request a loan
// @Description Approve a loan when some movement covers 10% of it. The loan posts after a delay.
// @Tags        banking
// @Accept      json
// @Produce     json
// @Param       request body LoanRequest true "Loan amount"
// @Success     202 {object} view.Snapshot "Loan approved"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Failure     401 {object} ErrorResponse "No active session"
// @Failure     422 {object} ErrorResponse "Loan ineligible"
// @Router      /loan [post]
func (h *BankHandler) Loan(c *gin.Context) {
	var req LoanRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := session.ParseLoan(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	snap, err := h.bankService.Dispatch(c.Request.Context(), cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, snap)
}

// Close handles account closure
// @Summary     Close the account
// @Description Permanently delete the logged in account and end the session.
// @Tags        banking
// @Accept      json
// @Produce     json
// @Param       request body CloseRequest true "Credentials of the logged in account"
// @Success     200 {object} view.Snapshot "Screen after closing"
// @Failure     401 {object} ErrorResponse "No active session"
// @Failure     403 {object} ErrorResponse "Credentials do not match the session"
// @Router      /close [post]
func (h *BankHandler) Close(c *gin.Context) {
	var req CloseRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := session.ParseClose(req.Username, req.PIN)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.dispatch(c, cmd)
}

// Sort handles the sort toggle
// @Summary     Toggle movement order
// @Description Switch between recorded order and ascending amount.
// @Tags        banking
// @Produce     json
// @Success     200 {object} view.Snapshot "Screen after toggling"
// @Failure     401 {object} ErrorResponse "No active session"
// @Router      /sort [post]
func (h *BankHandler) Sort(c *gin.Context) {
	h.dispatch(c, session.SortToggle{})
}

// GetScreen returns the current screen
// @Summary     Current screen
// @Tags        session
// @Produce     json
// @Success     200 {object} view.Snapshot
// @Router      /screen [get]
func (h *BankHandler) GetScreen(c *gin.Context) {
	snap, err := h.bankService.Screen(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetMovements returns a page of movement rows
// @Summary     List movements
// @Description Movement rows of the logged in account, newest first, in the current sort order.
// @Tags        banking
// @Produce     json
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[session.MovementRow]
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     401 {object} ErrorResponse "No active session"
// @Router      /movements [get]
func (h *BankHandler) GetMovements(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	resp, err := h.bankService.Movements(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPendingLoans lists loans that have not posted yet
// @Summary     Pending loans
// @Tags        banking
// @Produce     json
// @Success     200 {object} map[string][]scheduler.Task
// @Failure     401 {object} ErrorResponse "No active session"
// @Router      /loans [get]
func (h *BankHandler) GetPendingLoans(c *gin.Context) {
	tasks, err := h.bankService.PendingLoans(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loans": tasks})
}

// GetPendingLoan returns one pending loan of the session account
// @Summary     Pending loan
// @Tags        banking
// @Produce     json
// @Param       id path string true "Loan task ID"
// @Success     200 {object} scheduler.Task
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "No active session"
// @Failure     404 {object} ErrorResponse "Loan not pending"
// @Router      /loans/{id} [get]
func (h *BankHandler) GetPendingLoan(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	task, err := h.bankService.PendingLoan(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *BankHandler) dispatch(c *gin.Context, cmd session.Command) {
	snap, err := h.bankService.Dispatch(c.Request.Context(), cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
