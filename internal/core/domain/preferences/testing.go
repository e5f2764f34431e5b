package preferences

import (
	"context"
	"fmt"
)

type FakePreferences struct {
	Values      map[Key]string
	ReturnError bool
}

func NewFakePreferences(values map[Key]string) *FakePreferences {
	if values == nil {
		values = make(map[Key]string)
	}
	return &FakePreferences{Values: values}
}

func (p *FakePreferences) Get(ctx context.Context, key Key) (string, error) {
	if p.ReturnError {
		return "", fmt.Errorf("could not get preference %s", key)
	}
	value, ok := p.Values[key]
	if !ok {
		return "", fmt.Errorf("preference %s is not defined", key)
	}
	return value, nil
}
