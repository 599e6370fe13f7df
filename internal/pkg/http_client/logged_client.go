package http_client

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type LoggedClient struct {
	*http.Client
	log *logrus.Logger
}

func NewLoggedClient(log *logrus.Logger) *LoggedClient {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggedClient{
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// Do выполняет запрос и пишет в лог метод, URL, статус и длительность.
// Тела запросов и ответов не логируются: в них токены и бинарные данные.
func (c *LoggedClient) Do(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	resp, err := c.Client.Do(req)

	fields := logrus.Fields{
		"method":      req.Method,
		"url":         req.URL.String(),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}

	if err != nil {
		c.log.WithFields(fields).WithError(err).Error("outbound request failed")
		return nil, err
	}

	fields["status"] = resp.StatusCode
	c.log.WithFields(fields).Debug("outbound request")

	return resp, nil
}
