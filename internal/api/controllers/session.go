package controllers

import "time"

func maxAgeUntil(expiresAt int64) int {
	secs := time.Until(time.Unix(expiresAt, 0)).Seconds()
	if secs < 1 {
		return 1
	}
	return int(secs)
}
