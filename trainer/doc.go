// Package trainer drives online training of a network over a labelled
// dataset: one forward pass and at most one back-propagation step per
// sample, epoch accounting, a learning-rate schedule and early stopping on
// a target accuracy.
//
// By default only misclassified samples are back-propagated and the rate
// decays as 0.1·exp(-epoch/100). Progress goes to an optional *slog.Logger.
package trainer
