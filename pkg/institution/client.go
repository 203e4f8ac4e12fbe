/**
 * @description
 * This package provides the connector to financial institutions. There is no
 * real institution API behind it: every call is resolved locally and returns
 * the response code a connected institution would produce. Centralizing the
 * simulation here keeps the service layer written against a client boundary,
 * so a real transport could replace this package without touching the core.
 *
 * @notes
 * - Calls against a disconnected institution fail closed with
 *   domain.ErrInstitutionOffline.
 */
package institution

import (
	"context"
	"log/slog"

	"github.com/trustmark/designation-service/internal/domain"
)

// Client is the simulated institution API connector.
type Client struct {
	logger *slog.Logger
}

// NewClient creates a new institution connector.
func NewClient(logger *slog.Logger) *Client {
	return &Client{logger: logger}
}

// SubmitDesignations transmits an account's beneficiary state to its
// institution and returns the institution's response code.
func (c *Client) SubmitDesignations(ctx context.Context, inst domain.Institution, account *domain.Account) (string, error) {
	c.logger.Info("submitting designations to institution",
		"institution", inst.ID, "account_id", account.ID, "beneficiaries", len(account.Beneficiaries))
	return domain.ResponseChangesAccepted, nil
}

// PushUpdate pushes the current beneficiary designations to a connected
// institution without a full submission.
func (c *Client) PushUpdate(ctx context.Context, inst domain.Institution, account *domain.Account) (string, error) {
	if !inst.Connected {
		return "", domain.ErrInstitutionOffline
	}
	c.logger.Info("pushing beneficiary update to institution",
		"institution", inst.ID, "account_id", account.ID)
	return domain.ResponseAckReceived, nil
}

// SyncAccount refreshes account data from a connected institution.
func (c *Client) SyncAccount(ctx context.Context, inst domain.Institution, account *domain.Account) (string, error) {
	if !inst.Connected {
		return "", domain.ErrInstitutionOffline
	}
	c.logger.Info("synchronizing account with institution",
		"institution", inst.ID, "account_id", account.ID)
	return domain.ResponseDataSynced, nil
}
