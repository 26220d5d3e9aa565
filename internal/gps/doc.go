// Package gps reads raw NMEA 0183 from a serial GNSS receiver or a TCP
// feed, folds the sentences into a fix aggregator, and publishes the
// current state as an immutable snapshot.
package gps
