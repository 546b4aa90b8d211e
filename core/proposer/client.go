// Package proposer ties the token registry, balance reader, calculator,
// builder and wallet submitter into the single call a presentation layer
// needs: propose a payment stream.
package proposer

import (
	"context"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vaultstream/sdk-go/core/logging"
	"github.com/vaultstream/sdk-go/core/schedule"
	"github.com/vaultstream/sdk-go/core/txbuilder"
	"github.com/vaultstream/sdk-go/core/types"
	"github.com/vaultstream/sdk-go/core/util"
)

type Client struct {
	Registry  types.TokenRegistry `validate:"required"`
	Balances  types.BalanceReader `validate:"required"`
	Submitter types.Submitter     `validate:"required"`

	deployments txbuilder.Deployments
	now         func() time.Time
}

type Option func(*Client)

func NewClient(options ...Option) (*Client, error) {
	c := &Client{
		deployments: txbuilder.DefaultDeployments(),
		now:         time.Now,
	}
	for _, option := range options {
		option(c)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return c, nil
}

func (c *Client) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func WithTokenRegistry(r types.TokenRegistry) Option {
	return func(c *Client) {
		c.Registry = r
	}
}

func WithBalanceReader(b types.BalanceReader) Option {
	return func(c *Client) {
		c.Balances = b
	}
}

func WithSubmitter(s types.Submitter) Option {
	return func(c *Client) {
		c.Submitter = s
	}
}

// WithDeployments overrides the built-in contract address table.
func WithDeployments(d txbuilder.Deployments) Option {
	return func(c *Client) {
		c.deployments = d
	}
}

// WithClock overrides the wall clock used to anchor stream windows. Tests use
// this to make proposals deterministic.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// ProposeStream validates the request, plans the stream, builds the ordered
// transaction batch and hands it to the wallet submitter. Every failure is
// detected before the handoff; a partial batch is never submitted.
//
// The returned proposal carries the adjusted amount that will actually stream,
// which may be less than the requested amount (truncated to a multiple of the
// duration). Callers must display the plan's amount, not the request's.
func (c *Client) ProposeStream(ctx context.Context, req types.StreamRequest) (*types.StreamProposal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Addresses were parsed once during Validate; re-parsing cannot fail here.
	sender, err := util.NewEthereumAddressFromString(req.Sender)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	recipient, err := util.NewEthereumAddressFromString(req.Recipient)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	token, err := c.Registry.Token(ctx, req.ChainID, req.TokenID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dep, err := c.deployments.ForChain(req.ChainID)
	if err != nil {
		return nil, err
	}

	raw, err := c.Balances.Balance(ctx, req.ChainID, token, sender)
	if err != nil {
		return nil, errors.Wrap(err, "read balance")
	}
	available, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, errors.Errorf("malformed balance %q for token %s", raw, token.ID)
	}
	if err := schedule.CheckBalance(req.Amount, available, token); err != nil {
		return nil, err
	}

	plan, err := schedule.ComputePlan(req.Amount, req.DurationSeconds, c.now())
	if err != nil {
		return nil, err
	}

	batch, err := txbuilder.BuildBatch(dep, token, recipient, plan)
	if err != nil {
		return nil, err
	}

	if err := c.Submitter.SubmitBatch(ctx, batch); err != nil {
		return nil, errors.Wrap(err, "submit batch")
	}

	proposal := &types.StreamProposal{
		ID:    uuid.New(),
		Token: token,
		Plan:  plan,
		Batch: batch,
	}
	logging.Logger.Info("Proposed payment stream",
		zap.String("proposalId", proposal.ID.String()),
		zap.String("chainId", req.ChainID),
		zap.String("token", token.ID),
		zap.String("amount", plan.Amount.String()),
		zap.Int64("start", plan.Window.Start),
		zap.Int64("stop", plan.Window.Stop))

	return proposal, nil
}
