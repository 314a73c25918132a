/*
Package ports defines the interfaces that decouple the cipherkit core from
its collaborators.

# Key Interfaces

  - Transformer: the pure text transformation contract consumed by sessions.
  - Clock: the time source used to stamp history entries.
*/
package ports
