package commands

import (
	"context"
	"net/url"
	"strings"

	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

// RequestPasswordResetCommandHandler issues a reset token for a registered email and
// hands the link "<frontendURL>/reset-password?token=<token>" to the notifier.
// Unknown emails yield errs.ObjectNotFoundError.
type RequestPasswordResetCommandHandler struct {
	identities  ports.IdentityStore
	tokens      ports.TokenIssuer
	notifier    ports.PasswordResetNotifier
	frontendURL string
}

func NewRequestPasswordResetCommandHandler(
	identities ports.IdentityStore,
	tokens ports.TokenIssuer,
	notifier ports.PasswordResetNotifier,
	frontendURL string,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		identities:  identities,
		tokens:      tokens,
		notifier:    notifier,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func (h RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := h.identities.FindByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if u == nil {
		return errs.NewObjectNotFoundError("email", cmd.Email())
	}

	token, err := h.tokens.IssueResetToken(u.ID())
	if err != nil {
		return err
	}

	link := h.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
	return h.notifier.NotifyPasswordReset(ctx, u.Email(), link)
}
