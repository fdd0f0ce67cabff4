package redis

import "fmt"

const keyPrefix = "connect4"

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, sessionID)
}
