/*
Package ports defines the driven ports (interfaces) of the rendering engine.

These interfaces decouple the engine from the backends it runs against, so the
same engine can cache in process memory for the CLI and in Redis when several
HTTP replicas share work.

# Key Interfaces

  - RenderCache: Stores rendered layouts by content hash.
  - Locker: Serializes the rendering of one layout across goroutines or replicas,
    so a burst of identical requests renders once.

RunRenderCacheContract and RunLockerContract verify that an adapter honors these
contracts; adapter tests call them with a fresh instance.
*/
package ports
