package repository

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sidehustle/internal/model"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// IDPredicate is the resolved form of an incoming entry identifier. Either key may be
// absent; a predicate with neither must never reach the store.
type IDPredicate struct {
	ObjectID *primitive.ObjectID
	Numeric  *int64
}

// ResolveID maps an identifier string onto the opaque key space (24-char hex
// ObjectID) and the numeric display id space. ok is false when neither applies.
func ResolveID(raw string) (pred IDPredicate, ok bool) {
	raw = strings.TrimSpace(raw)
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		pred.ObjectID = &oid
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		pred.Numeric = &n
	}
	return pred, pred.ObjectID != nil || pred.Numeric != nil
}

// Filter renders the predicate as a query document. Both keys present yields an $or.
func (p IDPredicate) Filter() bson.M {
	var clauses []bson.M
	if p.ObjectID != nil {
		clauses = append(clauses, bson.M{"_id": *p.ObjectID})
	}
	if p.Numeric != nil {
		clauses = append(clauses, bson.M{"id": *p.Numeric})
	}
	switch len(clauses) {
	case 0:
		return nil
	case 1:
		return clauses[0]
	default:
		return bson.M{"$or": clauses}
	}
}

// String is used in log lines.
func (p IDPredicate) String() string {
	var parts []string
	if p.ObjectID != nil {
		parts = append(parts, "_id="+p.ObjectID.Hex())
	}
	if p.Numeric != nil {
		parts = append(parts, "id="+strconv.FormatInt(*p.Numeric, 10))
	}
	return strings.Join(parts, "|")
}

// Query selects catalog entries for list and search.
type Query struct {
	Term     string
	Category string
	Status   string
}

// IsAllCategories reports whether category means "no category filter".
func IsAllCategories(category string) bool {
	return category == "" || category == model.AllCategories || strings.EqualFold(category, "all")
}

// statusClause matches a status. Documents that predate the status field count as published.
func statusClause(status string) any {
	if status == string(model.StatusPublished) {
		return bson.M{"$in": bson.A{string(model.StatusPublished), nil}}
	}
	return status
}

// ListFilter builds the status-only filter used by list.
func ListFilter(status string) bson.M {
	filter := bson.M{}
	if status != StatusAll {
		filter["status"] = statusClause(status)
	}
	return filter
}

// SearchFilter builds the filter used by search: status, category, and a literal,
// case-insensitive term over title, description and any tool.
func SearchFilter(q Query) bson.M {
	filter := ListFilter(q.Status)
	if !IsAllCategories(q.Category) {
		filter["category"] = q.Category
	}
	if q.Term != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(q.Term), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
			bson.M{"tools": bson.M{"$elemMatch": bson.M{"$regex": rx.Pattern, "$options": rx.Options}}},
		}
	}
	return filter
}

// SortOrder puts featured entries first, then the most recently updated.
func SortOrder() bson.D {
	return bson.D{
		{Key: "featured", Value: -1},
		{Key: "lastUpdated", Value: -1},
		{Key: "_id", Value: 1},
	}
}
