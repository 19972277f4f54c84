package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PreSurveyResponse holds the demographics collected before the trials.
type PreSurveyResponse struct {
	ID                     bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Age                    *Text         `bson:"age,omitempty" json:"age,omitempty"`
	Gender                 *Text         `bson:"gender,omitempty" json:"gender,omitempty"`
	Country                *Text         `bson:"country,omitempty" json:"country,omitempty"`
	FamiliarityWithRobots  *Text         `bson:"familiarityWithRobots,omitempty" json:"familiarityWithRobots,omitempty"`
	PreferRobotsOverHumans *Text         `bson:"preferRobotsOverHumans,omitempty" json:"preferRobotsOverHumans,omitempty"`
	Version                int           `bson:"__v" json:"__v"`

	nulls []string
}

var preSurveyFields = []string{"age", "gender", "country", "familiarityWithRobots", "preferRobotsOverHumans"}

func (p *PreSurveyResponse) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type plain PreSurveyResponse
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	nulls, err := nullKeys(data, preSurveyFields, nil)
	p.nulls = nulls
	return err
}

func (p PreSurveyResponse) MarshalBSON() ([]byte, error) {
	type plain PreSurveyResponse
	return marshalWithNulls(plain(p), p.nulls)
}

// TrialResponse is a single Likert answer given during a trial set.
type TrialResponse struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Set      *Number       `bson:"set,omitempty" json:"set,omitempty"`
	Question *Text         `bson:"question,omitempty" json:"question,omitempty"`
	Response *Number       `bson:"response,omitempty" json:"response,omitempty"`
	Version  int           `bson:"__v" json:"__v"`

	nulls []string
}

// UnmarshalJSON treats a blank string in a numeric field as null.
func (t *TrialResponse) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type Alias TrialResponse
	aux := struct {
		*Alias
		Set      json.RawMessage `json:"set"`
		Response json.RawMessage `json:"response"`
	}{Alias: (*Alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if t.Set, err = optionalNumber(aux.Set); err != nil {
		return err
	}
	if t.Response, err = optionalNumber(aux.Response); err != nil {
		return err
	}

	nulls, err := nullKeys(data, []string{"question"}, []string{"set", "response"})
	t.nulls = nulls
	return err
}

func (t TrialResponse) MarshalBSON() ([]byte, error) {
	type plain TrialResponse
	return marshalWithNulls(plain(t), t.nulls)
}

// PostSurveyResponse holds the questionnaire answered after the trials.
type PostSurveyResponse struct {
	ID                     bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SatisfactionRating     *Text         `bson:"satisfactionRating,omitempty" json:"satisfactionRating,omitempty"`
	FindRobotsInteresting  *Text         `bson:"findRobotsInteresting,omitempty" json:"findRobotsInteresting,omitempty"`
	PreferRobotsOverHumans *Text         `bson:"preferRobotsOverHumans,omitempty" json:"preferRobotsOverHumans,omitempty"`
	AdditionalComments     *Text         `bson:"additionalComments,omitempty" json:"additionalComments,omitempty"`
	Version                int           `bson:"__v" json:"__v"`

	nulls []string
}

var postSurveyFields = []string{"satisfactionRating", "findRobotsInteresting", "preferRobotsOverHumans", "additionalComments"}

func (p *PostSurveyResponse) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type plain PostSurveyResponse
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	nulls, err := nullKeys(data, postSurveyFields, nil)
	p.nulls = nulls
	return err
}

func (p PostSurveyResponse) MarshalBSON() ([]byte, error) {
	type plain PostSurveyResponse
	return marshalWithNulls(plain(p), p.nulls)
}

// SurveyBatch is the body of a trial batch submission.
type SurveyBatch struct {
	SubmittedResponses []TrialResponse `json:"submittedResponses"`
}
