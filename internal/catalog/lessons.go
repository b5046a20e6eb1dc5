package catalog

// Builtin returns the React-for-Web3 learning path. Lesson order matters:
// navigation is strictly sequential and indices are stable for a session.
//
// Predicate fragments are literal normalized substrings of the expected
// solution shapes. The check is syntactic containment, not a semantic or
// AST comparison; a correct but differently-styled submission (renamed
// variables, reordered attributes) is rejected. That is the documented
// verification contract for these lessons.
func Builtin() Catalog {
	return New([]Lesson{
		{
			Title: "Lesson 1: Components & JSX for dApps",
			Explanation: `In React, a component is a reusable, independent piece of UI. For Web3, these are the building blocks of your Decentralized Application (dApp).
You'll use functional components, which are JavaScript functions that return JSX (React's syntax extension for describing UI).

The component's name should always start with an uppercase letter.`,
			Example: `// A simple component to display wallet connection status
import React from 'react';

function WalletStatusDisplay() {
  return <p>Wallet Not Connected</p>;
}

export default WalletStatusDisplay;`,
			Challenge: `Your task is to create a functional component named 'ConnectWalletButton'.
This component should render a <button> tag with the text "Connect Wallet".`,
			Solution: `function ConnectWalletButton() {
  return <button>Connect Wallet</button>;
}`,
			Accept: ContainsAny(
				`functionconnectwalletbutton(){return<button>connectwallet</button>;}`,
				`constconnectwalletbutton=()=>{return<button>connectwallet</button>;}`,
			),
		},
		{
			Title: "Lesson 2: Passing Data with Props in dApps",
			Explanation: `Props (short for "properties") are how you pass data from a parent component to a child component.
In dApps, you'll often pass wallet addresses, network names, or token amounts using props.
Props are read-only, ensuring child components don't accidentally modify parent data.`,
			Example: `// Parent component (e.g., App.js)
import React from 'react';

function WalletDisplay(props) {
  return <p>Connected as: {props.address}</p>;
}

function App() {
  const userAddress = "0xAbc...123"; // This would come from a wallet connection
  return (
    <div>
      <WalletDisplay address={userAddress} />
    </div>
  );
}

export default App;`,
			Challenge: `Modify your 'TokenBalance' component.
It should now accept two props: 'symbol' (e.g., "ETH") and 'amount' (e.g., "0.5").
It should display a <p> tag like: "Your [symbol] balance: [amount]".

For example, if used as <TokenBalance symbol="ETH" amount="0.5" />, it should render "Your ETH balance: 0.5".`,
			Solution: `function TokenBalance(props) {
  return <p>Your {props.symbol} balance: {props.amount}</p>;
}`,
			Accept: ContainsAny(
				`functiontokenbalance(props){return<p>your{props.symbol}balance:{props.amount}</p>;}`,
				`consttokenbalance=(props)=>{return<p>your{props.symbol}balance:{props.amount}</p>;}`,
				`consttokenbalance=({symbol,amount})=>{return<p>your{symbol}balance:{amount}</p>;}`,
			),
		},
		{
			Title: "Lesson 3: Managing dApp State with useState",
			Explanation: `Components often need to remember dynamic information, like whether a wallet is connected, or the status of a transaction. This is called "state".
In functional components, we use the 'useState' Hook to add state.
'useState' returns the current state value and a function to update it. When state changes, React re-renders the component.`,
			Example: `import React, { useState } from 'react';

function ConnectWallet() {
  const [isConnected, setIsConnected] = useState(false);

  const handleConnect = () => {
    setIsConnected(true); // Simulate connecting wallet
  };

  return (
    <div>
      <p>{isConnected ? 'Wallet Connected!' : 'Wallet Disconnected.'}</p>
      {!isConnected && <button onClick={handleConnect}>Connect Wallet</button>}
    </div>
  );
}

export default ConnectWallet;`,
			Challenge: `Create a functional component named 'TransactionStatus'.
It should have a state variable 'status' initialized to "Idle".
Add a button that, when clicked, changes the 'status' to "Pending...".
Display the current 'status' in a <p> tag.

Remember to import 'useState' from 'react'.`,
			Solution: `import React, { useState } from 'react';

function TransactionStatus() {
  const [status, setStatus] = useState("Idle");

  const startTransaction = () => {
    setStatus("Pending...");
  };

  return (
    <div>
      <p>Transaction Status: {status}</p>
      <button onClick={startTransaction}>Start Transaction</button>
    </div>
  );
}`,
			Accept: ContainsAll(
				`usestate("idle")`,
				`setstatus("pending...")`,
				`<buttononclick={starttransaction}>`,
			),
		},
		{
			Title: "Lesson 4: Event Handling for Web3 Actions",
			Explanation: `Event handling is crucial for dApps, allowing users to interact with your UI and trigger blockchain actions.
You'll use event listeners like 'onClick' on HTML elements (like buttons) to call JavaScript functions.
These functions will then often interact with your wallet provider or smart contracts.`,
			Example: `import React from 'react';

function SendTransactionButton() {
  const handleClick = () => {
    console.log("Initiating transaction...");
    // In a real dApp, you'd call your Web3 library here
  };

  return (
    <button onClick={handleClick}>Send Transaction</button>
  );
}

export default SendTransactionButton;`,
			Challenge: `Create a functional component named 'MintNFTButton'.
It should render a <button> tag with the text "Mint NFT".
When the button is clicked, it should log the message "Minting NFT..." to the console.`,
			Solution: `function MintNFTButton() {
  const handleMint = () => {
    console.log("Minting NFT...");
  };

  return (
    <button onClick={handleMint}>Mint NFT</button>
  );
}`,
			Accept: ContainsAll(
				`functionmintnftbutton(){`,
				`consthandlemint=()=>`,
				`console.log("mintingnft...")`,
				`<buttononclick={handlemint}>`,
			),
		},
		{
			Title: "Lesson 5: Conditional Rendering in dApps",
			Explanation: `dApps often need to show different parts of the UI based on conditions, such as whether a user's wallet is connected, if data is loading, or if a transaction has succeeded.
Conditional rendering allows you to render elements or components based on certain states or props.`,
			Example: `import React from 'react';

function DAppDashboard({ isConnected, isLoading }) {
  if (!isConnected) {
    return <p>Please connect your wallet to use the dApp.</p>;
  }

  if (isLoading) {
    return <p>Loading dApp data...</p>;
  }

  return (
    <div>
      <h2>Welcome to the dApp!</h2>
      <p>Your wallet is connected.</p>
    </div>
  );
}

export default DAppDashboard;`,
			Challenge: `Create a functional component named 'DataLoader'.
It should accept a prop 'isLoading' (boolean).
If 'isLoading' is true, display an <h1> tag with "Loading data...".
If 'isLoading' is false, display an <h1> tag with "Data loaded successfully!".`,
			Solution: `function DataLoader({ isLoading }) {
  if (isLoading) {
    return <h1>Loading data...</h1>;
  }
  return <h1>Data loaded successfully!</h1>;
}`,
			Accept: ContainsAll(
				`functiondataloader({isloading}){`,
				`if(isloading){return<h1>loadingdata...</h1>;}`,
				`return<h1>dataloadedsuccessfully!</h1>;`,
			),
		},
		{
			Title: "Lesson 6: useEffect for Blockchain Data",
			Explanation: `The 'useEffect' Hook in React lets you perform side effects in functional components.
In Web3, this is commonly used to fetch data from a blockchain or smart contract when a component mounts, or when certain dependencies (like a wallet address or network change) are updated.
It's a powerful tool for synchronizing your UI with off-chain or on-chain data.`,
			Example: `import React, { useState, useEffect } from 'react';

function BlockchainDataFetcher() {
  const [data, setData] = useState(null);
  const [loading, setLoading] = useState(true);

  useEffect(() => {
    // Simulate fetching data from a blockchain API or smart contract
    const fetchData = async () => {
      setLoading(true);
      setTimeout(() => { // Simulate network delay
        setData("Some data from blockchain!");
        setLoading(false);
      }, 2000);
    };

    fetchData();
  }, []); // Empty dependency array means this runs once on mount

  return (
    <div>
      {loading ? <p>Fetching blockchain data...</p> : <p>{data}</p>}
    </div>
  );
}

export default BlockchainDataFetcher;`,
			Challenge: `Create a functional component named 'UserBalanceFetcher'.
It should use 'useState' for a 'balance' variable (initial: "0 ETH") and 'isLoading' (initial: true).
Use 'useEffect' to simulate fetching a user's balance:
After a 3-second delay, set 'balance' to "1.23 ETH" and 'isLoading' to false.
Display "Loading balance..." while loading, and "Your balance: [balance]" when loaded.

Remember to import 'useState' and 'useEffect' from 'react'.`,
			Solution: `import React, { useState, useEffect } from 'react';

function UserBalanceFetcher() {
  const [balance, setBalance] = useState("0 ETH");
  const [isLoading, setIsLoading] = useState(true);

  useEffect(() => {
    const fetchUserBalance = () => {
      setTimeout(() => {
        setBalance("1.23 ETH");
        setIsLoading(false);
      }, 3000); // Simulate 3-second fetch delay
    };

    fetchUserBalance();
  }, []); // Runs once on component mount

  return (
    <div>
      {isLoading ? <p>Loading balance...</p> : <p>Your balance: {balance}</p>}
    </div>
  );
}`,
			Accept: ContainsAll(
				`usestate("0eth")`,
				`usestate(true)`,
				`useeffect(()=>`,
				`settimeout(()=>`,
				`setbalance("1.23eth")`,
				`setisloading(false)`,
				`isloading?<p>loadingbalance...</p>:<p>yourbalance:{balance}</p>`,
			),
		},
	})
}
