package model

import (
	"errors"
	"strings"
)

type ServerType string

const (
	ServerTypePostgres   ServerType = "Postgres"
	ServerTypeRedis      ServerType = "Redis"
	ServerTypeKafka      ServerType = "Kafka"
	ServerTypeAstraLinux ServerType = "AstraLinux"
	ServerTypeOther      ServerType = "Other"
)

// ServerTypes lists every supported type in display order.
var ServerTypes = []ServerType{
	ServerTypePostgres,
	ServerTypeRedis,
	ServerTypeKafka,
	ServerTypeAstraLinux,
	ServerTypeOther,
}

var ErrUnknownServerType = errors.New("unknown server type")

var displayNames = map[ServerType]string{
	ServerTypePostgres:   "Postgres",
	ServerTypeRedis:      "Redis",
	ServerTypeKafka:      "Kafka",
	ServerTypeAstraLinux: "Astra Linux",
	ServerTypeOther:      "Другое",
}

func (t ServerType) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

func (t ServerType) IsValid() bool {
	_, ok := displayNames[t]
	return ok
}

// ParseServerType accepts a canonical type name in any case or one of the display names.
// An empty value resolves to ServerTypeOther.
func ParseServerType(s string) (ServerType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServerTypeOther, nil
	}
	for _, t := range ServerTypes {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, displayNames[t]) {
			return t, nil
		}
	}
	if strings.EqualFold(s, "astra_linux") {
		return ServerTypeAstraLinux, nil
	}
	return "", ErrUnknownServerType
}
