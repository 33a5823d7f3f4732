package mcpsrv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/logging"
	"github.com/qyinm/bites/mcpsrv/dto"
	"github.com/qyinm/bites/types"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageLimit = 25
	maxPageLimit     = 100
)

type itemsListArgs struct {
	Category string `json:"category,omitempty" jsonschema:"Category filter: all, desserts, drinks, food"`
	Query    string `json:"query,omitempty" jsonschema:"Optional case-insensitive search over name and description"`
	Offset   int    `json:"offset,omitempty" jsonschema:"Optional pagination offset"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Optional page size limit (max 100)"`
}

type itemIDArgs struct {
	ID int `json:"id" jsonschema:"Item id"`
}

type categoryListOutput struct {
	Total int            `json:"total"`
	Items []dto.Category `json:"items"`
}

type itemsListOutput struct {
	Category   string     `json:"category"`
	Query      string     `json:"query"`
	Offset     int        `json:"offset"`
	Limit      int        `json:"limit"`
	NextOffset int        `json:"next_offset"`
	HasMore    bool       `json:"has_more"`
	Total      int        `json:"total"`
	Items      []dto.Item `json:"items"`
	Stats      dto.Stats  `json:"stats"`
}

type itemGetOutput struct {
	Item dto.ItemDetail `json:"item"`
}

type favoriteToggleOutput struct {
	ID         int  `json:"id"`
	Liked      bool `json:"liked"`
	LikedCount int  `json:"liked_count"`
}

type favoritesListOutput struct {
	Total int        `json:"total"`
	Items []dto.Item `json:"items"`
}

type statsGetOutput struct {
	Category string    `json:"category"`
	Query    string    `json:"query"`
	Stats    dto.Stats `json:"stats"`
}

type favoritesResetOutput struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type ServerOptions struct {
	EnableAdmin bool
	APIKey      string
	Metrics     *Metrics
	Logger      *logrus.Entry
}

var errBadPaging = errors.New("invalid paging")

// NewServer registers the gallery tools over source. Selection state lives in
// store; a nil store gets a fresh one.
func NewServer(source types.ItemSource, store *SessionStore, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	if store == nil {
		store = NewSessionStore(source, opts.Metrics)
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewLogger("mcp")
	}
	metrics := opts.Metrics

	server := mcp.NewServer(&mcp.Implementation{Name: "bites", Version: version}, nil)

	addTool(server, &mcp.Tool{
		Name:        "category_list",
		Description: "List gallery categories with item counts.",
	}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, categoryListOutput, error) {
		return categoryListHandler(ctx, req, source)
	})

	addTool(server, &mcp.Tool{
		Name:        "items_list",
		Description: "List the items visible for a category and search query. Updates this session's selection.",
	}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, args itemsListArgs) (*mcp.CallToolResult, itemsListOutput, error) {
		return itemsListHandler(ctx, req, args, store, metrics)
	})

	addTool(server, &mcp.Tool{
		Name:        "item_get",
		Description: "Get one item by id, including whether this session likes it.",
	}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, args itemIDArgs) (*mcp.CallToolResult, itemGetOutput, error) {
		return itemGetHandler(ctx, req, args, source, store)
	})

	addTool(server, &mcp.Tool{
		Name:        "favorite_toggle",
		Description: "Toggle the favorite flag of an item in this session.",
	}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, args itemIDArgs) (*mcp.CallToolResult, favoriteToggleOutput, error) {
		return favoriteToggleHandler(ctx, req, args, source, store, metrics)
	})

	addTool(server, &mcp.Tool{
		Name:        "favorites_list",
		Description: "List this session's favorite items in catalog order.",
	}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, favoritesListOutput, error) {
		return favoritesListHandler(ctx, req, store)
	})

	addTool(server, &mcp.Tool{
		Name:        "stats_get",
		Description: "Get visible, liked and total counts and the average rating for this session.",
	}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, statsGetOutput, error) {
		return statsGetHandler(ctx, req, store)
	})

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		addTool(server, &mcp.Tool{
			Name:        "favorites_reset",
			Description: "Clear favorites in every session (admin).",
		}, metrics, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, favoritesResetOutput, error) {
			return favoritesResetHandler(ctx, req, store, log)
		})
	}

	return server
}

// addTool registers h and counts its calls by outcome.
func addTool[In, Out any](server *mcp.Server, tool *mcp.Tool, metrics *Metrics, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args In) (*mcp.CallToolResult, Out, error) {
		result, out, err := h(ctx, req, args)
		metrics.toolCall(tool.Name, err != nil || (result != nil && result.IsError))
		return result, out, err
	})
}

func categoryListHandler(_ context.Context, _ *mcp.CallToolRequest, source types.ItemSource) (*mcp.CallToolResult, categoryListOutput, error) {
	categories := dto.FromCategoryCounts(gallery.CountByCategory(source.Items()))
	return nil, categoryListOutput{
		Total: len(categories),
		Items: categories,
	}, nil
}

func itemsListHandler(_ context.Context, req *mcp.CallToolRequest, args itemsListArgs, store *SessionStore, metrics *Metrics) (*mcp.CallToolResult, itemsListOutput, error) {
	category, err := types.ParseCategory(args.Category)
	if err != nil {
		return errorToolResult(err.Error()), itemsListOutput{}, nil
	}
	if args.Offset < 0 || args.Limit < 0 {
		return errorToolResult(fmt.Sprintf("%v: offset and limit must not be negative", errBadPaging)), itemsListOutput{}, nil
	}

	var (
		visible []types.Item
		stats   gallery.Stats
	)
	store.With(sessionID(req), func(s *gallery.Session) {
		s.SelectCategory(category)
		s.SetSearch(args.Query)
		visible = s.Visible()
		stats = s.Stats()
	})
	metrics.observeVisible(len(visible))

	offset, end, nextOffset, limit := paginate(len(visible), args.Offset, args.Limit)
	hasMore := nextOffset != -1

	return nil, itemsListOutput{
		Category:   category.String(),
		Query:      args.Query,
		Offset:     offset,
		Limit:      limit,
		NextOffset: nextOffset,
		HasMore:    hasMore,
		Total:      len(visible),
		Items:      dto.FromItems(visible[offset:end]),
		Stats:      dto.FromStats(stats),
	}, nil
}

func itemGetHandler(_ context.Context, req *mcp.CallToolRequest, args itemIDArgs, source types.ItemSource, store *SessionStore) (*mcp.CallToolResult, itemGetOutput, error) {
	item, ok := source.Item(args.ID)
	if !ok {
		return errorToolResult(fmt.Sprintf("item %d not found", args.ID)), itemGetOutput{}, nil
	}

	var liked bool
	store.With(sessionID(req), func(s *gallery.Session) {
		liked = s.IsLiked(item.ID())
	})

	return nil, itemGetOutput{Item: dto.FromItemDetail(item, liked)}, nil
}

func favoriteToggleHandler(_ context.Context, req *mcp.CallToolRequest, args itemIDArgs, source types.ItemSource, store *SessionStore, metrics *Metrics) (*mcp.CallToolResult, favoriteToggleOutput, error) {
	if _, ok := source.Item(args.ID); !ok {
		return errorToolResult(fmt.Sprintf("item %d not found", args.ID)), favoriteToggleOutput{}, nil
	}

	var (
		liked bool
		count int
	)
	store.With(sessionID(req), func(s *gallery.Session) {
		liked = s.ToggleLike(args.ID)
		count = s.State().Liked.Len()
	})
	metrics.favoriteToggled(liked)

	return nil, favoriteToggleOutput{ID: args.ID, Liked: liked, LikedCount: count}, nil
}

func favoritesListHandler(_ context.Context, req *mcp.CallToolRequest, store *SessionStore) (*mcp.CallToolResult, favoritesListOutput, error) {
	var liked []types.Item
	store.With(sessionID(req), func(s *gallery.Session) {
		liked = s.Liked()
	})
	return nil, favoritesListOutput{Total: len(liked), Items: dto.FromItems(liked)}, nil
}

func statsGetHandler(_ context.Context, req *mcp.CallToolRequest, store *SessionStore) (*mcp.CallToolResult, statsGetOutput, error) {
	var out statsGetOutput
	store.With(sessionID(req), func(s *gallery.Session) {
		state := s.State()
		out = statsGetOutput{
			Category: state.Category.String(),
			Query:    state.Search,
			Stats:    dto.FromStats(s.Stats()),
		}
	})
	return nil, out, nil
}

func favoritesResetHandler(_ context.Context, _ *mcp.CallToolRequest, store *SessionStore, log *logrus.Entry) (*mcp.CallToolResult, favoritesResetOutput, error) {
	n := store.ResetFavorites()
	log.WithField("sessions", n).Info("favorites reset")
	return nil, favoritesResetOutput{Status: "ok", Sessions: n}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

// paginate clamps offset and limit to total and returns the page bounds.
// nextOffset is -1 on the last page.
func paginate(total, offset, limit int) (start, end, nextOffset, pageLimit int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	end = offset + limit
	if end > total {
		end = total
	}
	nextOffset = end
	if end >= total {
		nextOffset = -1
	}
	return offset, end, nextOffset, limit
}
