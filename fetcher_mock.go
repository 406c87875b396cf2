package stressind

import (
	"fmt"
	"time"

	m "stressindicator/internal/model"

	"github.com/kr/pretty"
)

/***************************** Fetcher ***********************************/

type FetcherMock struct {
	series map[string]m.TimeSeries
	err    map[string]error
}

func (mock FetcherMock) Series(id string, start, end time.Time) (m.TimeSeries, error) {
	fmt.Println("Series Called :", id)

	if err, ok := mock.err[id]; ok {
		return m.TimeSeries{ID: id}, err
	}

	ts, ok := mock.series[id]
	if !ok {
		return m.TimeSeries{ID: id}, nil
	}
	return ts, nil
}

/***************************** Notifier ***********************************/

type NotifierMock struct {
	msgs []string
}

func (mock *NotifierMock) SendMessage(msg string) {
	fmt.Println("SendMessage Called :", pretty.Sprint(msg))
	mock.msgs = append(mock.msgs, msg)
}
