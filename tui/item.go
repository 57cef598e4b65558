package tui

import (
	"github.com/spf13/viper"
	"github.com/typetour/typetour/key"
	"github.com/typetour/typetour/style"
	"github.com/typetour/typetour/tour"
)

// listItem adapts a catalog example to list.DefaultItem.
type listItem struct {
	example *tour.Example
}

func (i listItem) Title() string {
	if viper.GetBool(key.TourShowTopic) {
		return i.example.Title + " " + style.Faint("#"+i.example.Topic)
	}
	return i.example.Title
}

func (i listItem) Description() string {
	return i.example.Name
}

func (i listItem) FilterValue() string {
	return i.example.Name + " " + i.example.Title
}
