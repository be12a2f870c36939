package view

import (
	"context"

	"github.com/preston-bernstein/isoanalytics/internal/domain/teams"
	"github.com/preston-bernstein/isoanalytics/internal/join"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
)

// ListRequest is a parsed list view request.
type ListRequest struct {
	Query listing.Query
	Sort  listing.SortKey
	Page  int
}

// PlayerList is the sortable, filterable, paginated roster table.
type PlayerList struct {
	Filters  listing.Query          `json:"filters"`
	Sort     listing.SortKey        `json:"sort"`
	Catalog  teams.Catalog          `json:"catalog"`
	Page     listing.Page[join.Row] `json:"page"`
	PrevPage int                    `json:"prevPage"`
	NextPage int                    `json:"nextPage"`
}

// BuildPlayerList fetches the filtered roster, joins stats, sorts and paginates.
func BuildPlayerList(ctx context.Context, source RowSource, req ListRequest) PlayerList {
	sortKey := req.Sort
	if sortKey == "" {
		sortKey = listing.DefaultSort
	}
	rows := listing.SortBy(source.Rows(ctx, req.Query), sortKey)
	page := listing.Paginate(rows, req.Page, listing.DefaultPageSize)

	return PlayerList{
		Filters:  req.Query,
		Sort:     sortKey,
		Catalog:  teams.NewCatalog(),
		Page:     page,
		PrevPage: listing.ClampPage(page.Page-1, page.TotalPages),
		NextPage: listing.ClampPage(page.Page+1, page.TotalPages),
	}
}
