package main

type Printer interface {
	Start() error
	Result(result *Result) error
	End() error
}
