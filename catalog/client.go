package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitalvas/amzkit/marketplace"
	"github.com/vitalvas/amzkit/sigv4"
)

const (
	contentType     = "application/json; charset=utf-8"
	contentEncoding = "amz-1.0"
)

// Config configures a Client.
type Config struct {
	// AccessKey and SecretKey are the signing credentials. Empty
	// credentials are rejected at call time by the signer.
	AccessKey string
	SecretKey string

	// PartnerTag is the account tag carried in every payload. Required.
	PartnerTag string

	// PartnerType is the account type carried in every payload.
	// Defaults to "Associates".
	PartnerType string

	// Marketplace is the marketplace identifier, such as "us" or "de".
	// Defaults to "us".
	Marketplace string

	// Resources is the default list of response field selectors merged
	// into every payload.
	Resources []string

	// Registry resolves the marketplace identifier to endpoint data. When
	// nil, the built-in table is used.
	Registry *marketplace.Registry

	// Transport performs the HTTP POST. When nil, an HTTPTransport with
	// http.DefaultClient is used.
	Transport Transport
}

// Client issues signed Product Advertising API calls. All fields except
// the resource default are fixed at construction; the resource default is
// mutex-guarded, so a Client is safe for concurrent use.
type Client struct {
	creds         sigv4.Credentials
	partnerTag    string
	partnerType   string
	marketplaceID string
	registry      *marketplace.Registry
	transport     Transport
	now           func() time.Time

	mu        sync.Mutex
	resources []string
}

// NewClient creates a Client from cfg, applying defaults for the zero
// fields.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.PartnerTag) == "" {
		return nil, ErrNoPartnerTag
	}

	partnerType := cfg.PartnerType
	if partnerType == "" {
		partnerType = "Associates"
	}

	marketplaceID := cfg.Marketplace
	if marketplaceID == "" {
		marketplaceID = "us"
	}

	registry := cfg.Registry
	if registry == nil {
		registry = marketplace.NewRegistry()
	}

	transport := cfg.Transport
	if transport == nil {
		transport = &HTTPTransport{}
	}

	return &Client{
		creds:         sigv4.Credentials{AccessKey: cfg.AccessKey, SecretKey: cfg.SecretKey},
		partnerTag:    cfg.PartnerTag,
		partnerType:   partnerType,
		marketplaceID: marketplaceID,
		registry:      registry,
		transport:     transport,
		now:           time.Now,
		resources:     slices.Clone(cfg.Resources),
	}, nil
}

// GetBrowseNodes looks up browse nodes by id.
func (c *Client) GetBrowseNodes(ctx context.Context, req GetBrowseNodesRequest) (*Result, error) {
	return c.Execute(ctx, req)
}

// GetItems looks up catalog items by id.
func (c *Client) GetItems(ctx context.Context, req GetItemsRequest) (*Result, error) {
	return c.Execute(ctx, req)
}

// GetVariations looks up the variations of one item.
func (c *Client) GetVariations(ctx context.Context, req GetVariationsRequest) (*Result, error) {
	return c.Execute(ctx, req)
}

// Execute runs one operation call: validate, build the payload, sign it,
// and issue a single POST. Validation and signing failures return before
// any transport call is made; transport errors are returned unmodified.
func (c *Client) Execute(ctx context.Context, req Request) (*Result, error) {
	if req == nil || !req.Operation().Valid() {
		return nil, ErrInvalidOperation
	}

	op := req.Operation()

	mk, err := c.registry.Lookup(c.marketplaceID)
	if err != nil {
		return nil, err
	}

	p, err := req.build()
	if err != nil {
		return nil, err
	}

	p.PartnerTag = c.partnerTag
	p.PartnerType = c.partnerType
	p.Marketplace = mk.Site
	p.Resources = c.mergeResources(req.resources())

	// Serialized exactly once: these bytes are both signed and sent.
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	endpoint := mk.EndpointURL(op.String())

	signHeader := http.Header{}
	signHeader.Set("Content-Type", contentType)
	signHeader.Set("Content-Encoding", contentEncoding)
	signHeader.Set("X-Amz-Target", op.Target())

	signed, err := sigv4.Sign(http.MethodPost, endpoint, signHeader, body, sigv4.SignConfig{
		Credentials: c.creds,
		Region:      mk.Region,
		Time:        c.now(),
	})
	if err != nil {
		return nil, err
	}

	header := signHeader.Clone()
	header.Set("Host", mk.Host)
	header.Set("Authorization", signed.Authorization)
	header.Set("X-Amz-Content-Sha256", signed.ContentSHA256)
	header.Set("X-Amz-Date", signed.Date)

	resp, err := c.transport.Post(ctx, endpoint, header, body)
	if err != nil {
		return nil, err
	}

	return &Result{
		RequestID: uuid.NewString(),
		Operation: op,
		Status:    resp.Status,
		Header:    resp.Header,
		Body:      resp.Body,
	}, nil
}

// Resources returns a copy of the client's current default resource list.
func (c *Client) Resources() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.resources)
}

// SetResources replaces the client's default resource list.
func (c *Client) SetResources(resources []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resources = slices.Clone(resources)
}

// mergeResources returns the resource list for one call. A non-nil
// override replaces the stored default for this and later calls.
func (c *Client) mergeResources(override []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if override != nil {
		c.resources = slices.Clone(override)
	}

	return slices.Clone(c.resources)
}
