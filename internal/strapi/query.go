package strapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filter is one filters[field][operator]=value clause.
type Filter struct {
	Field    string
	Operator string
	Value    string
}

// Eq builds an equality filter.
func Eq(field, value string) Filter {
	return Filter{Field: field, Operator: "$eq", Value: value}
}

// Query holds the Strapi REST parameters the site uses.
type Query struct {
	Populate []string
	Filters  []Filter
	Sort     []string
	Limit    int
	Start    int
}

// Values encodes q using Strapi's bracket syntax:
//
//	populate=*&filters[slug][$eq]=x&sort=publicationDate:desc&pagination[limit]=2
func (q Query) Values() url.Values {
	values := url.Values{}
	if len(q.Populate) > 0 {
		values.Set("populate", strings.Join(q.Populate, ","))
	}
	for _, filter := range q.Filters {
		operator := filter.Operator
		if operator == "" {
			operator = "$eq"
		}
		values.Add(fmt.Sprintf("filters[%s][%s]", filter.Field, operator), filter.Value)
	}
	if len(q.Sort) > 0 {
		values.Set("sort", strings.Join(q.Sort, ","))
	}
	if q.Limit > 0 {
		values.Set("pagination[limit]", strconv.Itoa(q.Limit))
	}
	if q.Start > 0 {
		values.Set("pagination[start]", strconv.Itoa(q.Start))
	}
	return values
}

// With returns a copy of q with extra filters appended.
func (q Query) With(filters ...Filter) Query {
	out := q
	out.Filters = append(append([]Filter(nil), q.Filters...), filters...)
	return out
}

const (
	sortNewest    = "publicationDate:desc"
	sortCurated   = "orderIndex:asc"
	sortCreatedAt = "createdAt:desc"
)

var populateAll = []string{"*"}

func publishedQuery(opts ListOptions) Query {
	return Query{
		Populate: populateAll,
		Filters:  []Filter{Eq("isPublished", "true")},
		Sort:     []string{sortNewest},
		Limit:    opts.Limit,
		Start:    opts.Start,
	}
}

func activeQuery(sort string, opts ListOptions) Query {
	return Query{
		Populate: populateAll,
		Filters:  []Filter{Eq("isActive", "true")},
		Sort:     []string{sort},
		Limit:    opts.Limit,
		Start:    opts.Start,
	}
}

func singleQuery() Query {
	return Query{Populate: populateAll}
}
