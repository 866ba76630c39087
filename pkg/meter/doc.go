/*

Package meter provides the metrics registry model shared among all
packages in this Go module:

-   registries and composite registries
-   the process-wide global registry
-   customizers and binders and the configuration routine applying them
-   exporting metrics via HTTP


Global State

The global registry is package-level state so that registries configured
in independent initialization paths can feed a single exposition
endpoint without passing references around. For non-test use cases this
perfectly fits the global nature of metric support.

For testing it may be required to let SUTs use test doubles instead of
the original global registry. This can be achieved by patching the
global state of this package during test setup and reverting the patch
at test teardown. Be aware that tests patching global state must not run
concurrently to other tests to avoid interference. See the Testing type
for test support.

*/
package meter
