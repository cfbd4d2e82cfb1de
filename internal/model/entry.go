package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the lifecycle state of a catalog entry.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Difficulty levels shown to readers.
const (
	DifficultyEasy   = "简单"
	DifficultyMedium = "中等"
	DifficultyHard   = "高"
)

// AllCategories is the synthetic bucket that means "no category filter".
const AllCategories = "全部"

// LastUpdatedLayout is the date format of Entry.LastUpdated.
const LastUpdatedLayout = "2006-01-02"

// Entry is one side-hustle listing.
type Entry struct {
	ObjectID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ID           int64              `json:"id" bson:"id"`
	Title        string             `json:"title" bson:"title"`
	Category     string             `json:"category" bson:"category"`
	Description  string             `json:"description" bson:"description"`
	Tools        []string           `json:"tools" bson:"tools"`
	Pricing      string             `json:"pricing" bson:"pricing"`
	Difficulty   string             `json:"difficulty" bson:"difficulty"`
	Setup        string             `json:"setup" bson:"setup"`
	Profit       string             `json:"profit" bson:"profit"`
	Requirements []string           `json:"requirements" bson:"requirements"`
	Steps        []string           `json:"steps" bson:"steps"`
	Pros         []string           `json:"pros" bson:"pros"`
	Cons         []string           `json:"cons" bson:"cons"`
	Views        int64              `json:"views" bson:"views"`
	LastUpdated  string             `json:"lastUpdated" bson:"lastUpdated"`
	Featured     bool               `json:"featured" bson:"featured"`
	Status       Status             `json:"status" bson:"status"`
	CreatedAt    *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	CreatedBy    string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}

// Normalize fills defaults for fields that older documents may lack.
func (e *Entry) Normalize() {
	if e.Status == "" {
		e.Status = StatusPublished
	}
	if e.Views < 0 {
		e.Views = 0
	}
	e.Tools = orEmpty(e.Tools)
	e.Requirements = orEmpty(e.Requirements)
	e.Steps = orEmpty(e.Steps)
	e.Pros = orEmpty(e.Pros)
	e.Cons = orEmpty(e.Cons)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// EntryPatch carries the fields of a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Title        *string   `json:"title,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Tools        *[]string `json:"tools,omitempty"`
	Pricing      *string   `json:"pricing,omitempty"`
	Difficulty   *string   `json:"difficulty,omitempty" validate:"omitempty,oneof=简单 中等 高"`
	Setup        *string   `json:"setup,omitempty"`
	Profit       *string   `json:"profit,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Steps        *[]string `json:"steps,omitempty"`
	Pros         *[]string `json:"pros,omitempty"`
	Cons         *[]string `json:"cons,omitempty"`
	LastUpdated  *string   `json:"lastUpdated,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Featured     *bool     `json:"featured,omitempty"`
	Status       *Status   `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// SetDocument returns the $set body for the patch, always stamping updatedAt.
func (p EntryPatch) SetDocument(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	putString(set, "title", p.Title)
	putString(set, "category", p.Category)
	putString(set, "description", p.Description)
	putStrings(set, "tools", p.Tools)
	putString(set, "pricing", p.Pricing)
	putString(set, "difficulty", p.Difficulty)
	putString(set, "setup", p.Setup)
	putString(set, "profit", p.Profit)
	putStrings(set, "requirements", p.Requirements)
	putStrings(set, "steps", p.Steps)
	putStrings(set, "pros", p.Pros)
	putStrings(set, "cons", p.Cons)
	putString(set, "lastUpdated", p.LastUpdated)
	if p.Featured != nil {
		set["featured"] = *p.Featured
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	return set
}

func putString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

func putStrings(set bson.M, key string, v *[]string) {
	if v != nil {
		set[key] = orEmpty(*v)
	}
}

// CategoryCount is one bucket of the category breakdown.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
