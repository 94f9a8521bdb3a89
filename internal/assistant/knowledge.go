package assistant

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type Tip struct {
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

// KnowledgeBase is the assistant's tips table, loaded once from CSV at
// startup and immutable afterwards.
type KnowledgeBase struct {
	Tips      []*Tip
	TopicTips map[string][]*Tip
}

func NewKnowledgeBase(tipsCsvReader *csv.Reader) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{}
	kb.TopicTips = make(map[string][]*Tip)

	log.Println("reading tips CSV ...")

	tipsCsvReader.Comma = ';'
	for {
		record, err := tipsCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("record [%s] does not have 2 elements", record)
		}

		// TIP;TOPIC
		tip := &Tip{
			Text:  record[0],
			Topic: record[1],
		}
		kb.Tips = append(kb.Tips, tip)
		kb.TopicTips[tip.Topic] = append(kb.TopicTips[tip.Topic], tip)
	}

	if len(kb.Tips) == 0 {
		return nil, fmt.Errorf("tips CSV is empty")
	}

	log.Printf("tips CSV read %d tips", len(kb.Tips))

	return kb, nil
}

func (kb *KnowledgeBase) RandomTip() *Tip {
	index := rand.Float64() * float64(len(kb.Tips))
	return kb.Tips[int(index)]
}

func (kb *KnowledgeBase) RandomTipForTopic(topic string) (*Tip, bool) {
	tips, ok := kb.TopicTips[topic]
	if !ok || len(tips) == 0 {
		return nil, false
	}
	index := rand.Float64() * float64(len(tips))
	return tips[int(index)], true
}

func (kb *KnowledgeBase) Topics() []string {
	topics := make([]string, 0, len(kb.TopicTips))
	for topic := range kb.TopicTips {
		topics = append(topics, topic)
	}
	return topics
}
