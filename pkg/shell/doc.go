// Package shell turns command lines into session operations.
//
// A Dispatcher owns a static table of verbs and routes each tokenized line to
// its handler. Handlers never panic on engine errors: every outcome, success
// or failure, is returned as a display string.
//
//	d := shell.NewDispatcher(sess, shell.Options{})
//	fmt.Println(d.Execute("ls /etc"))
package shell
