package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/listingai/listingai-backend/internal/config"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	content string
	err     error
	calls   int
	last    llm.CompletionRequest
}

func (f *fakeGenerator) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.last = req
	return f.content, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }
func (f *fakeGenerator) Model() string    { return "fake-model" }

const listingJSON = `{
  "title": "Nike Air Max 90 Men's Size 10 White Grey Sneakers - Good Condition",
  "description": "Step out in a classic.",
  "bulletPoints": ["Iconic Air cushioning", "Size 10", "Clean uppers", "Original laces", "Ships fast"],
  "keywords": ["nike", "air max 90", "sneakers", "running shoes", "mens shoes", "white", "grey", "retro"]
}`

func newListingService(gen llm.TextGenerator) *ListingService {
	return NewListingService(gen, config.GetCatalog("usd"), time.Second)
}

func decodeListing(t *testing.T, raw json.RawMessage) models.ListingResult {
	t.Helper()
	var listing models.ListingResult
	require.NoError(t, json.Unmarshal(raw, &listing))
	return listing
}

func TestGenerateListing(t *testing.T) {
	t.Run("unfenced json", func(t *testing.T) {
		gen := &fakeGenerator{content: listingJSON}
		s := newListingService(gen)

		raw, err := s.GenerateListing(context.Background(), &models.ListingRequest{
			ProductName: "Nike Air Max 90",
			Platform:    "eBay",
			Condition:   "Good",
		})
		require.NoError(t, err)
		listing := decodeListing(t, raw)
		assert.NotEmpty(t, listing.Title)
		assert.LessOrEqual(t, len(listing.Title), 80)
		assert.NotEmpty(t, listing.Description)
		assert.Len(t, listing.BulletPoints, 5)
		assert.Len(t, listing.Keywords, 8)

		assert.Equal(t, 1, gen.calls)
		assert.Equal(t, listingSystemPrompt, gen.last.System)
		assert.InDelta(t, 0.7, gen.last.Temperature, 0.0001)
		assert.Equal(t, 1000, gen.last.MaxTokens)
	})

	t.Run("fenced json", func(t *testing.T) {
		gen := &fakeGenerator{content: "```json\n" + listingJSON + "\n```"}
		raw, err := newListingService(gen).GenerateListing(context.Background(), &models.ListingRequest{ProductName: "Nike Air Max 90"})
		require.NoError(t, err)
		assert.Len(t, decodeListing(t, raw).BulletPoints, 5)
	})

	t.Run("missing product name never calls provider", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			gen := &fakeGenerator{content: listingJSON}
			_, err := newListingService(gen).GenerateListing(context.Background(), &models.ListingRequest{
				ProductName: name,
				Platform:    "Amazon",
				Condition:   "New",
			})
			assert.ErrorIs(t, err, ErrProductNameRequired)
			assert.Zero(t, gen.calls)
		}
	})

	t.Run("non json text is a parse failure", func(t *testing.T) {
		gen := &fakeGenerator{content: "Sorry, I can't help with that."}
		_, err := newListingService(gen).GenerateListing(context.Background(), &models.ListingRequest{ProductName: "Lamp"})
		assert.ErrorIs(t, err, ErrMalformedListing)
	})

	t.Run("empty content", func(t *testing.T) {
		gen := &fakeGenerator{content: "  \n"}
		_, err := newListingService(gen).GenerateListing(context.Background(), &models.ListingRequest{ProductName: "Lamp"})
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("provider error is wrapped", func(t *testing.T) {
		upstream := errors.New("connection reset")
		gen := &fakeGenerator{err: upstream}
		_, err := newListingService(gen).GenerateListing(context.Background(), &models.ListingRequest{ProductName: "Lamp"})
		assert.ErrorIs(t, err, upstream)
		assert.NotErrorIs(t, err, ErrMalformedListing)
	})

	t.Run("defaults platform and condition", func(t *testing.T) {
		gen := &fakeGenerator{content: listingJSON}
		req := &models.ListingRequest{ProductName: "  Lamp  "}
		_, err := newListingService(gen).GenerateListing(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Lamp", req.ProductName)
		assert.Equal(t, "eBay", req.Platform)
		assert.Equal(t, "New", req.Condition)
		assert.Contains(t, gen.last.Prompt, "Generate an optimized product listing for eBay.")
	})
}

func TestBuildPrompt(t *testing.T) {
	s := newListingService(&fakeGenerator{})

	t.Run("amazon with optional fields", func(t *testing.T) {
		prompt := s.BuildPrompt(&models.ListingRequest{
			ProductName: "Instant Pot Duo 6qt",
			Platform:    "Amazon",
			Condition:   "Like new",
			Category:    "Kitchen",
			Features:    "Used twice",
		})
		assert.Contains(t, prompt, "Product: Instant Pot Duo 6qt\n")
		assert.Contains(t, prompt, "Condition: Like new\n")
		assert.Contains(t, prompt, "Category: Kitchen\n")
		assert.Contains(t, prompt, "Additional Details: Used twice\n")
		assert.Contains(t, prompt, "(max 200 chars for Amazon)")
		assert.Contains(t, prompt, `"bulletPoints" - Array of 5`)
		assert.Contains(t, prompt, "- Format appropriately for Amazon's style")
		assert.Contains(t, prompt, "Respond ONLY with valid JSON, no markdown or explanation.")
	})

	t.Run("optional lines omitted", func(t *testing.T) {
		prompt := s.BuildPrompt(&models.ListingRequest{ProductName: "Lamp", Platform: "eBay", Condition: "Good"})
		assert.NotContains(t, prompt, "Category:")
		assert.NotContains(t, prompt, "Additional Details:")
		assert.Contains(t, prompt, "(max 80 chars for eBay)")
	})

	t.Run("unknown platform uses default limit", func(t *testing.T) {
		prompt := s.BuildPrompt(&models.ListingRequest{ProductName: "Lamp", Platform: "Craigslist", Condition: "Good"})
		assert.Contains(t, prompt, "(max 80 chars for Craigslist)")
	})
}

func TestParseListing(t *testing.T) {
	t.Run("fenced object", func(t *testing.T) {
		raw, err := ParseListing("```\n" + listingJSON + "```")
		require.NoError(t, err)
		assert.Equal(t, "Step out in a classic.", decodeListing(t, raw).Description)
	})

	t.Run("fields are passed through untyped", func(t *testing.T) {
		raw, err := ParseListing(`{"title":"Lamp","keywords":"lamp, light, desk","price":"$20"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Lamp","keywords":"lamp, light, desk","price":"$20"}`, string(raw))
	})

	t.Run("any json value parses", func(t *testing.T) {
		raw, err := ParseListing(`["not", "an", "object"]`)
		require.NoError(t, err)
		assert.JSONEq(t, `["not","an","object"]`, string(raw))
	})

	t.Run("invalid json", func(t *testing.T) {
		for _, content := range []string{`{"title":`, `{"title":"Lamp"} trailing`, "Great shoes!"} {
			_, err := ParseListing(content)
			assert.ErrorIs(t, err, ErrMalformedListing, "content %q", content)
		}
	})
}
