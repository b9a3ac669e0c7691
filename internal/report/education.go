package report

import (
	"embed"
	"fmt"
)

//go:embed content/*.md
var content embed.FS

// Topic selects an education page
type Topic string

// Education topics
const (
	TopicGeneral  Topic = "general"
	TopicBitcoin  Topic = "bitcoin"
	TopicEthereum Topic = "ethereum"
	TopicRisk     Topic = "risk"
)

// Education returns the page for topic; unknown topics get the general page
func Education(topic Topic) string {
	switch topic {
	case TopicBitcoin, TopicEthereum, TopicRisk:
	default:
		topic = TopicGeneral
	}
	return mustPage(string(topic))
}

// Help lists what the assistant understands
func Help() string {
	return mustPage("help")
}

func mustPage(name string) string {
	data, err := content.ReadFile("content/" + name + ".md")
	if err != nil {
		panic(fmt.Sprintf("report: missing embedded page %s: %v", name, err))
	}
	return string(data)
}
