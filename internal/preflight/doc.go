// Package preflight runs environment checks before models are fetched: binary
// availability, writable directories, and Hugging Face hub reachability.
//
// Nothing here runs on the load path; the doctor command surfaces the results.
package preflight
