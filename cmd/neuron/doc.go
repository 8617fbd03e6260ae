// SPDX-License-Identifier: MIT

// Command neuron trains, evaluates and serves a fully connected network.
//
// Usage:
//
//	neuron train   -data train.txt -layers 784,256,10 -weights w.txt
//	neuron train   -data train-images.idx3-ubyte.gz -labels train-labels.idx1-ubyte.gz
//	neuron eval    -data test.csv -weights w.txt
//	neuron predict -weights w.txt -input 0,0.8,1,...
//	neuron serve   -addr :8080 -weights w.txt
//
// Data formats are picked from the file name (".csv" is CSV, a -labels file
// means IDX, anything else is the whitespace text format) unless -format is
// given. A weights file that exists is loaded before training; training
// writes the weights back when it stops, including on interrupt.
package main
