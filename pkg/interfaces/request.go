package interfaces

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/search"
	"github.com/yair/groupie-tracker/pkg/slider"
)

const maxQueryLength = 200

// SliderConfig sizes the member-count slider shown on the search page.
type SliderConfig struct {
	MaxMembers int
	MinGap     int
}

type filterRequest struct {
	Query        string `json:"q"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	FirstAlbum   string `json:"firstAlbum"`
	CreationDate string `json:"creationDate"`
	Min          string `json:"min"`
	Max          string `json:"max"`
	// Picked is set when the query came from clicking a suggestion.
	Picked       string `json:"picked"`
}

func newFilterRequest(r *http.Request) filterRequest {
	q := r.URL.Query()
	return filterRequest{
		Query:        q.Get("q"),
		Name:         q.Get("name"),
		Location:     q.Get("location"),
		FirstAlbum:   q.Get("firstAlbum"),
		CreationDate: q.Get("creationDate"),
		Min:          q.Get("min"),
		Max:          q.Get("max"),
		Picked:       q.Get("picked"),
	}
}

func (f filterRequest) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Query, validation.Length(0, maxQueryLength)),
		validation.Field(&f.Name, validation.Length(0, maxQueryLength)),
		validation.Field(&f.Location, validation.Length(0, maxQueryLength)),
		validation.Field(&f.FirstAlbum, validation.Length(0, maxQueryLength)),
		validation.Field(&f.CreationDate, validation.Length(0, maxQueryLength)),
		validation.Field(&f.Min, is.Digit, validation.Length(0, 9)),
		validation.Field(&f.Max, is.Digit, validation.Length(0, 9)),
		validation.Field(&f.Picked, validation.In("1")),
	)
	return asValidationError(err)
}

// criteria builds the filter pass and the slider it is displayed with.
// Bounds go through the slider so the page and the filter agree; an absent
// max leaves the range open at the top.
func (f filterRequest) criteria(cfg SliderConfig) (search.Criteria, *slider.DualRange) {
	sl := slider.New(cfg.MaxMembers, cfg.MinGap)
	if f.Min != "" {
		sl.SlideOne(atoi(f.Min))
	}
	if f.Max != "" {
		sl.SlideTwo(atoi(f.Max))
	}

	members := domain.MemberRange{}
	if f.Min != "" {
		members.Min = sl.One
	}
	if f.Max != "" {
		members = sl.Range()
	}

	return search.Criteria{
		Query:        f.Query,
		Name:         f.Name,
		Location:     f.Location,
		FirstAlbum:   f.FirstAlbum,
		CreationDate: f.CreationDate,
		Members:      members,
	}, sl
}

type sliderRequest struct {
	One   string `json:"one"`
	Two   string `json:"two"`
	Moved string `json:"moved"`
}

func newSliderRequest(r *http.Request) sliderRequest {
	q := r.URL.Query()
	return sliderRequest{
		One:   q.Get("one"),
		Two:   q.Get("two"),
		Moved: q.Get("moved"),
	}
}

func (s sliderRequest) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.One, is.Digit, validation.Length(0, 9)),
		validation.Field(&s.Two, is.Digit, validation.Length(0, 9)),
		validation.Field(&s.Moved, validation.Required, validation.In("one", "two")),
	)
	return asValidationError(err)
}

// apply replays the move: the resting handle is placed first, then the
// moved one is pushed against it.
func (s sliderRequest) apply(cfg SliderConfig) *slider.DualRange {
	sl := slider.New(cfg.MaxMembers, cfg.MinGap)
	one, two := sl.One, sl.Two
	if s.One != "" {
		one = atoi(s.One)
	}
	if s.Two != "" {
		two = atoi(s.Two)
	}

	if s.Moved == "one" {
		sl.SlideTwo(two)
		sl.SlideOne(one)
	} else {
		sl.SlideOne(one)
		sl.SlideTwo(two)
	}
	return sl
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// asValidationError reports the first failing field, in name order.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	first := fields[0]
	return domain.ValidationError{Field: first, Message: fieldErrs[first].Error()}
}
