package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/listingai/listingai-backend/internal/config"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services/llm"
	"github.com/listingai/listingai-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	defaultPlatform  = "eBay"
	defaultCondition = "New"

	listingTemperature = 0.7
	listingMaxTokens   = 1000

	listingSystemPrompt = "You are an expert e-commerce copywriter. Always respond with valid JSON only, no markdown formatting."
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrEmptyCompletion     = errors.New("no response from text generation provider")
	ErrMalformedListing    = errors.New("failed to parse listing")
)

// ListingService turns product details into a marketplace listing
type ListingService struct {
	generator llm.TextGenerator
	catalog   *config.Catalog
	timeout   time.Duration
}

func NewListingService(generator llm.TextGenerator, catalog *config.Catalog, timeout time.Duration) *ListingService {
	return &ListingService{
		generator: generator,
		catalog:   catalog,
		timeout:   timeout,
	}
}

// GenerateListing validates req, asks the provider for a listing and returns the JSON it produced.
// req is normalised in place (defaults for platform and condition).
func (s *ListingService) GenerateListing(ctx context.Context, req *models.ListingRequest) (json.RawMessage, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, ErrProductNameRequired
	}
	normalizeListingRequest(req)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logrus.Infof("Generating %s listing with %s/%s for product %q",
		req.Platform, s.generator.Provider(), s.generator.Model(), req.ProductName)

	content, err := s.generator.Complete(ctx, llm.CompletionRequest{
		System:      listingSystemPrompt,
		Prompt:      s.BuildPrompt(req),
		Temperature: listingTemperature,
		MaxTokens:   listingMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyCompletion
	}

	listing, err := ParseListing(content)
	if err != nil {
		logrus.Errorf("Failed to parse AI response: %s", utils.Truncate(content, 2000))
		return nil, err
	}

	return listing, nil
}

// BuildPrompt renders the instruction prompt for req
func (s *ListingService) BuildPrompt(req *models.ListingRequest) string {
	titleLimit := config.DefaultTitleMaxLength
	if s.catalog != nil {
		titleLimit = s.catalog.TitleMaxLength(req.Platform)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert e-commerce listing writer. Generate an optimized product listing for %s.\n\n", req.Platform)
	fmt.Fprintf(&b, "Product: %s\n", strings.TrimSpace(req.ProductName))
	fmt.Fprintf(&b, "Condition: %s\n", req.Condition)
	if category := strings.TrimSpace(req.Category); category != "" {
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	if features := strings.TrimSpace(req.Features); features != "" {
		fmt.Fprintf(&b, "Additional Details: %s\n", features)
	}

	b.WriteString("\nGenerate the following in JSON format:\n")
	fmt.Fprintf(&b, "1. \"title\" - An optimized, keyword-rich title (max %d chars for %s)\n", titleLimit, req.Platform)
	b.WriteString("2. \"description\" - A compelling product description (2-3 paragraphs, professional but friendly tone)\n")
	b.WriteString("3. \"bulletPoints\" - Array of 5 key selling points/features (short, punchy)\n")
	b.WriteString("4. \"keywords\" - Array of 8-10 relevant search keywords\n")

	b.WriteString("\nMake sure to:\n")
	b.WriteString("- Include relevant keywords naturally in the title and description\n")
	b.WriteString("- Highlight the condition and any unique features\n")
	b.WriteString("- Use persuasive language that converts browsers to buyers\n")
	b.WriteString("- Be accurate and don't make claims not supported by the provided details\n")
	fmt.Fprintf(&b, "- Format appropriately for %s's style\n", req.Platform)

	b.WriteString("\nRespond ONLY with valid JSON, no markdown or explanation.")
	return b.String()
}

// ParseListing strips code fences from content and checks that the rest is JSON.
// The document is returned as is; field names and types are not checked.
func ParseListing(content string) (json.RawMessage, error) {
	var listing json.RawMessage
	if err := json.Unmarshal([]byte(utils.StripCodeFence(content)), &listing); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedListing, err)
	}
	return listing, nil
}

func normalizeListingRequest(req *models.ListingRequest) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.Platform = strings.TrimSpace(req.Platform)
	if req.Platform == "" {
		req.Platform = defaultPlatform
	}
	req.Condition = strings.TrimSpace(req.Condition)
	if req.Condition == "" {
		req.Condition = defaultCondition
	}
}
