package ports

// GameMetrics counts operation outcomes for the ops endpoint.
type GameMetrics interface {
	RecordOp(op string)
	RecordRejection(op string)
	RecordSaveFailure()
}
