/*
Package ports defines the interfaces between the solver core and its adapters.

# Key Interfaces

  - Solver: decides one graph (implemented by the runtime engine).
  - ResultStore: keeps final answers by graph fingerprint (memory or Redis).
  - DistributedLocker: guards a fingerprint while one instance solves it.
*/
package ports
