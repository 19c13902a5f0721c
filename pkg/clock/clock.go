// Package clock источник текущего времени в часовом поясе салона
package clock

import "time"

// Local возвращает текущее время в заданной зоне
type Local struct {
	loc *time.Location
}

// NewLocal создает провайдер; nil зона означает UTC
func NewLocal(loc *time.Location) *Local {
	if loc == nil {
		loc = time.UTC
	}
	return &Local{loc: loc}
}

// Now текущее время в зоне салона
func (l *Local) Now() time.Time {
	return time.Now().In(l.loc)
}

// Fixed всегда возвращает одно и то же время
type Fixed time.Time

// Now возвращает зафиксированное время
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
