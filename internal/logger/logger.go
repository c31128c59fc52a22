package logger

import (
	"fmt"
	"io"
	"log"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var level int

func SetLevel(l int) {
	level = l
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Println(v ...interface{}) {
	if level >= INFO {
		log.Println(v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	log.Print(fmt.Sprintf(format, v...))
}
