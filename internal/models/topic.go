package models

const PracticeTopicID = "practice"

type Topic struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Emoji string     `json:"emoji"`
	Words []WordPair `json:"words"`
}

type WordPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
	// TopicID is set only on practice words and points to the topic the word failed in.
	TopicID string `json:"topicId,omitempty"`
}
