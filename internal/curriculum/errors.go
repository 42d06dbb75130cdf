package curriculum

import "fmt"

// UnknownTopicError is returned when a layer references a topic ID that is
// neither in the graph nor declared by the layer itself.
type UnknownTopicError struct {
	Topic string // declaring topic, or the other end of a relation
	Ref   string // the missing ID
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("topic %q references unknown topic %q", e.Topic, e.Ref)
}
