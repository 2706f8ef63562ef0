package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(2023, "c")
	m.Set(2021, "a")
	m.Set(2022, "b")
	m.Set(2021, "A")

	assert.Equal(t, []int{2023, 2021, 2022}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get(2021)
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = m.Get(1999)
	assert.False(t, ok)
	assert.False(t, m.Has(1999))
}

func TestOrderedMap_Entries(t *testing.T) {
	m := FromEntries([]Entry[string, int]{{"Москва", 3}, {"Казань", 1}})

	assert.Equal(t, []Entry[string, int]{{"Москва", 3}, {"Казань", 1}}, m.Entries())
}

func TestOrderedMap_KeysIsCopy(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)

	keys := m.Keys()
	keys[0] = "z"

	assert.Equal(t, []string{"a"}, m.Keys())
}
