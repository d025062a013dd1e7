// Package slider models the two-handle member-count range slider.
package slider

import (
	"fmt"
	"strconv"

	"github.com/yair/groupie-tracker/pkg/domain"
)

const (
	trackColor = "#dadae5"
	rangeColor = "#3264fe"
)

// DualRange holds two handles on [0, Max]. After every move
// Two-One >= MinGap.
type DualRange struct {
	Max    int `json:"max"`
	MinGap int `json:"minGap"`
	One    int `json:"sliderOne"`
	Two    int `json:"sliderTwo"`
}

// New returns a slider with the handles at both ends of the track.
func New(max, minGap int) *DualRange {
	if max < 0 {
		max = 0
	}
	if minGap < 0 {
		minGap = 0
	}
	if minGap > max {
		minGap = max
	}
	return &DualRange{Max: max, MinGap: minGap, One: 0, Two: max}
}

func (s *DualRange) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// SlideOne moves the lower handle, stopping MinGap below the upper one.
func (s *DualRange) SlideOne(v int) {
	s.One = s.clamp(v)
	if s.Two-s.One <= s.MinGap {
		s.One = s.Two - s.MinGap
	}
}

// SlideTwo moves the upper handle, stopping MinGap above the lower one.
func (s *DualRange) SlideTwo(v int) {
	s.Two = s.clamp(v)
	if s.Two-s.One <= s.MinGap {
		s.Two = s.One + s.MinGap
	}
}

func (s *DualRange) LabelOne() string {
	return strconv.Itoa(s.One)
}

func (s *DualRange) LabelTwo() string {
	return strconv.Itoa(s.Two)
}

func (s *DualRange) percent(v int) string {
	if s.Max == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(v)/float64(s.Max)*100, 'f', -1, 64)
}

// Fill is the CSS background of the track: grey outside the handles, blue
// between them.
func (s *DualRange) Fill() string {
	p1, p2 := s.percent(s.One), s.percent(s.Two)
	return fmt.Sprintf("linear-gradient(to right, %s %s%% , %s %s%% , %s %s%%, %s %s%%)",
		trackColor, p1, rangeColor, p1, rangeColor, p2, trackColor, p2)
}

// Range exposes the handles as the member-count bounds of a filter pass.
func (s *DualRange) Range() domain.MemberRange {
	max := s.Two
	return domain.MemberRange{Min: s.One, Max: &max}
}

// State is the JSON view of the slider after a move.
type State struct {
	SliderOne int    `json:"sliderOne"`
	SliderTwo int    `json:"sliderTwo"`
	LabelOne  string `json:"range1"`
	LabelTwo  string `json:"range2"`
	Max       int    `json:"max"`
	Fill      string `json:"fill"`
}

func (s *DualRange) State() State {
	return State{
		SliderOne: s.One,
		SliderTwo: s.Two,
		LabelOne:  s.LabelOne(),
		LabelTwo:  s.LabelTwo(),
		Max:       s.Max,
		Fill:      s.Fill(),
	}
}
