package notion

import (
	"time"

	"github.com/fortuna-games/fortuna/internal/domain"
)

// Wire types for the store's property wrappers. Only the fields the record
// schema round-trips are modeled; anything else the store sends is ignored.

type textContent struct {
	Content string `json:"content"`
}

type richText struct {
	Type string      `json:"type,omitempty"`
	Text textContent `json:"text"`
}

type titleProp struct {
	Type  string     `json:"type,omitempty"`
	Title []richText `json:"title"`
}

type dateContent struct {
	Start string `json:"start"`
}

type dateProp struct {
	Type string       `json:"type,omitempty"`
	Date *dateContent `json:"date"`
}

type numberProp struct {
	Type   string `json:"type,omitempty"`
	Number int    `json:"number"`
}

type checkboxProp struct {
	Type     string `json:"type,omitempty"`
	Checkbox bool   `json:"checkbox"`
}

// properties is the record schema as the store sees it.
type properties struct {
	Key      titleProp    `json:"key"`
	Datetime dateProp     `json:"datetime"`
	Number   numberProp   `json:"number"`
	IsWin    checkboxProp `json:"is_win"`
	Checked  checkboxProp `json:"checked"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     parentRef  `json:"parent"`
	Properties properties `json:"properties"`
}

type updatePageRequest struct {
	Properties properties `json:"properties"`
}

type archivePageRequest struct {
	Archived bool `json:"archived"`
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []pageResult `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor string       `json:"next_cursor"`
}

type pageResult struct {
	ID         string     `json:"id"`
	Properties properties `json:"properties"`
}

type pageParent struct {
	Type   string `json:"type"`
	PageID string `json:"page_id"`
}

// databaseSchema declares property names and types when creating a database.
// The empty inner object selects the property type.
type databaseSchema map[string]map[string]struct{}

type createDatabaseRequest struct {
	Parent     pageParent     `json:"parent"`
	Title      []richText     `json:"title"`
	Properties databaseSchema `json:"properties"`
}

type createDatabaseResponse struct {
	ID string `json:"id"`
}

// recordSchema is the database layout every game shares.
func recordSchema() databaseSchema {
	return databaseSchema{
		PropKey:      {"title": {}},
		PropDatetime: {"date": {}},
		PropNumber:   {"number": {}},
		PropIsWin:    {"checkbox": {}},
		PropChecked:  {"checkbox": {}},
	}
}

// buildProperties translates a domain record into the store's schema.
func buildProperties(rec domain.PrizeRecord) properties {
	return properties{
		Key: titleProp{
			Type: "title",
			Title: []richText{{
				Type: "text",
				Text: textContent{Content: rec.Key},
			}},
		},
		Datetime: dateProp{
			Type: "date",
			Date: &dateContent{Start: rec.Timestamp.UTC().Format(time.RFC3339)},
		},
		Number:  numberProp{Type: "number", Number: rec.Number},
		IsWin:   checkboxProp{Type: "checkbox", Checkbox: rec.IsWin},
		Checked: checkboxProp{Type: "checkbox", Checkbox: rec.Checked},
	}
}

// toRecord translates a store page back into a domain record. Missing
// optional pieces default rather than fail; the caller already validated the
// envelope shape.
func (p pageResult) toRecord(game domain.Game) domain.PrizeRecord {
	rec := domain.PrizeRecord{
		ID:      p.ID,
		Number:  p.Properties.Number.Number,
		IsWin:   p.Properties.IsWin.Checkbox,
		Checked: p.Properties.Checked.Checkbox,
		Game:    game,
	}
	if len(p.Properties.Key.Title) > 0 {
		rec.Key = p.Properties.Key.Title[0].Text.Content
	}
	if p.Properties.Datetime.Date != nil {
		if ts, err := time.Parse(time.RFC3339, p.Properties.Datetime.Date.Start); err == nil {
			rec.Timestamp = ts
		}
	}
	return rec
}
