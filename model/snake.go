package model

import "slices"

// Snake is the ordered body, head first
type Snake struct {
	body []Position
}

// NewSnake creates a snake from its head and the segments behind it
func NewSnake(head Position, rest ...Position) *Snake {
	body := make([]Position, 0, len(rest)+1)
	body = append(body, head)
	body = append(body, rest...)
	return &Snake{body: body}
}

// Head returns the front segment
func (s *Snake) Head() Position {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Position {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p Position) bool {
	return slices.Contains(s.body, p)
}

// PushHead adds a new front segment
func (s *Snake) PushHead(p Position) {
	s.body = slices.Insert(s.body, 0, p)
}

// PopTail drops the last segment. A one-segment snake is never emptied.
func (s *Snake) PopTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []Position {
	return slices.Clone(s.body)
}
